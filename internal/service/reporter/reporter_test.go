package reporter_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/ScrpTrx-Go/GoCryptoTags/internal/config"
	"github.com/ScrpTrx-Go/GoCryptoTags/internal/domain/model"
	"github.com/ScrpTrx-Go/GoCryptoTags/internal/service/reporter"
	pkg "github.com/ScrpTrx-Go/GoCryptoTags/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeStore struct {
	articles []*model.Article
	err      error
}

func (s *fakeStore) SaveBatch(ctx context.Context, in <-chan *model.Article) error {
	for range in {
	}
	return nil
}

func (s *fakeStore) GetMinMaxTimestamps(ctx context.Context) (time.Time, time.Time, bool, error) {
	return time.Time{}, time.Time{}, false, nil
}

func (s *fakeStore) GetArticlesByPeriod(ctx context.Context, from, to time.Time) ([]*model.Article, error) {
	return s.articles, s.err
}

func sampleArticles() []*model.Article {
	ts := time.Date(2025, time.July, 21, 9, 0, 0, 0, time.UTC)
	return []*model.Article{
		{ID: 1, Channel: "cointelegraph", Timestamp: ts, Text: "Stellar (XLM) surges", Link: "https://t.me/cointelegraph/1",
			Keywords: []string{"Stellar", "XLM"}, Tickers: []string{"XLM"}, Projects: []string{"Stellar"}},
		{ID: 2, Channel: "stellarorg", Timestamp: ts.Add(time.Hour), Text: "XLM and Soroban",
			Keywords: []string{"Soroban", "Stellar", "XLM"}, Tickers: []string{"XLM"}, Projects: []string{"Soroban"}},
		{ID: 3, Channel: "cointelegraph", Timestamp: ts.Add(2 * time.Hour), Text: "Markets are quiet", Keywords: []string{}},
		{ID: 4, Channel: "cointelegraph", Timestamp: ts.Add(3 * time.Hour), ErrorType: "Empty text!"},
	}
}

func TestReportDataProcess(t *testing.T) {
	rd := reporter.NewReportData(pkg.NewNop())
	rd.Process(sampleArticles())

	ranking := rd.Ranking()
	require.Len(t, ranking, 3)
	assert.Equal(t, "Stellar", ranking[0].Label)
	assert.Equal(t, 2, ranking[0].Mentions)
	assert.False(t, ranking[0].IsTicker)
	assert.Equal(t, "XLM", ranking[1].Label)
	assert.True(t, ranking[1].IsTicker)
	assert.Equal(t, map[string]int{"cointelegraph": 1, "stellarorg": 1}, ranking[1].Channels)
	assert.Equal(t, "Soroban", ranking[2].Label)

	channels := rd.Channels()
	require.Len(t, channels, 2)
	assert.Equal(t, reporter.ChannelCounter{Channel: "cointelegraph", Articles: 3, Tagged: 1}, *channels[0])
	assert.Equal(t, reporter.ChannelCounter{Channel: "stellarorg", Articles: 1, Tagged: 1}, *channels[1])
}

func TestGenerateFullReportWritesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	r := reporter.NewReporter(pkg.NewNop(), &fakeStore{articles: sampleArticles()}, config.ReporterConfig{OutputDir: dir, TopLimit: 2})

	require.NoError(t, r.GenerateFullReport(context.Background(), time.Time{}, time.Now()))
	assert.FileExists(t, filepath.Join(dir, "keywords.docx"))

	f, err := excelize.OpenFile(filepath.Join(dir, "keywords.xlsx"))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Keywords")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Label", "Mentions", "Ticker", "Channels"}, rows[0])
	assert.Equal(t, []string{"Stellar", "2", "FALSE", "cointelegraph:1, stellarorg:1"}, rows[1])
	assert.Equal(t, "XLM", rows[2][0])
	assert.Equal(t, "TRUE", rows[2][2])

	channelRows, err := f.GetRows("Channels")
	require.NoError(t, err)
	assert.Equal(t, []string{"cointelegraph", "3", "1"}, channelRows[1])
}

func TestGenerateFullReportEmptyAndErrors(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")

	r := reporter.NewReporter(pkg.NewNop(), &fakeStore{}, config.ReporterConfig{OutputDir: dir})
	require.NoError(t, r.GenerateFullReport(context.Background(), time.Time{}, time.Now()))
	assert.NoDirExists(t, dir)

	boom := errors.New("boom")
	r = reporter.NewReporter(pkg.NewNop(), &fakeStore{err: boom}, config.ReporterConfig{OutputDir: dir})
	require.ErrorIs(t, r.GenerateFullReport(context.Background(), time.Time{}, time.Now()), boom)
}

func TestReportDataErrorTypesSorted(t *testing.T) {
	ts := time.Date(2025, time.July, 21, 9, 0, 0, 0, time.UTC)
	rd := reporter.NewReportData(pkg.NewNop())
	rd.Process([]*model.Article{
		{ID: 1, Channel: "cointelegraph", Timestamp: ts, ErrorType: "Unsupported content"},
		{ID: 2, Channel: "cointelegraph", Timestamp: ts, ErrorType: "Empty text!"},
		{ID: 3, Channel: "stellarorg", Timestamp: ts, ErrorType: "Link unavailable"},
		{ID: 4, Channel: "stellarorg", Timestamp: ts, ErrorType: "Empty text!"},
	})

	for i := 0; i < 5; i++ {
		assert.Equal(t, []string{"Empty text!", "Link unavailable", "Unsupported content"}, rd.ErrorTypes())
	}
	require.NoError(t, rd.SaveAll(t.TempDir(), 0))
}
