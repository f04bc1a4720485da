package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ScrpTrx-Go/GoCryptoTags/application"
	"github.com/ScrpTrx-Go/GoCryptoTags/internal/domain/model"
	"github.com/ScrpTrx-Go/GoCryptoTags/internal/service/keywords"
	"github.com/ScrpTrx-Go/GoCryptoTags/internal/service/tagger"
	pkg "github.com/ScrpTrx-Go/GoCryptoTags/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type period struct{ from, to time.Time }

type fakeFetcher struct {
	calls    []period
	articles []*model.Article
}

func (f *fakeFetcher) RunFetchPipeline(ctx context.Context, from, to time.Time) <-chan *model.Article {
	f.calls = append(f.calls, period{from, to})
	out := make(chan *model.Article, len(f.articles))
	for _, a := range f.articles {
		out <- a
	}
	close(out)
	return out
}

type fakeStore struct {
	min, max time.Time
	ok       bool
	err      error
	saved    []*model.Article
}

func (s *fakeStore) SaveBatch(ctx context.Context, in <-chan *model.Article) error {
	for a := range in {
		s.saved = append(s.saved, a)
	}
	return nil
}

func (s *fakeStore) GetMinMaxTimestamps(ctx context.Context) (time.Time, time.Time, bool, error) {
	return s.min, s.max, s.ok, s.err
}

func (s *fakeStore) GetArticlesByPeriod(ctx context.Context, from, to time.Time) ([]*model.Article, error) {
	return s.saved, nil
}

type fakeReporter struct{ calls int }

func (r *fakeReporter) GenerateFullReport(ctx context.Context, from, to time.Time) error {
	r.calls++
	return nil
}

func newApp(t *testing.T, fetcher *fakeFetcher, store *fakeStore, rep *fakeReporter) *application.App {
	t.Helper()
	extractor, err := keywords.NewDefaultExtractor()
	require.NoError(t, err)

	log := pkg.NewNop()
	pipeline := tagger.NewArticlePipeline(log, []tagger.TagArticleWorker{tagger.NewTagWorker(extractor, log)})
	return application.NewApp(fetcher, pipeline, log, store, rep)
}

func TestRunEmptyStoreFetchesWholePeriod(t *testing.T) {
	from := time.Date(2025, time.July, 21, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	fetcher := &fakeFetcher{articles: []*model.Article{{ID: 1, Channel: "cointelegraph", Text: "Bitcoin BTC"}}}
	store := &fakeStore{}
	rep := &fakeReporter{}

	require.NoError(t, newApp(t, fetcher, store, rep).Run(context.Background(), from, to))

	assert.Equal(t, []period{{from, to}}, fetcher.calls)
	require.Len(t, store.saved, 1)
	assert.Equal(t, []string{"BTC", "Bitcoin"}, store.saved[0].Keywords)
	assert.Equal(t, 1, rep.calls)
}

func TestRunFetchesOnlyMissingRanges(t *testing.T) {
	from := time.Date(2025, time.July, 20, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.July, 23, 0, 0, 0, 0, time.UTC)
	min := time.Date(2025, time.July, 21, 0, 0, 0, 0, time.UTC)
	max := time.Date(2025, time.July, 22, 0, 0, 0, 0, time.UTC)

	fetcher := &fakeFetcher{}
	store := &fakeStore{min: min, max: max, ok: true}
	rep := &fakeReporter{}

	require.NoError(t, newApp(t, fetcher, store, rep).Run(context.Background(), from, to))

	assert.Equal(t, []period{
		{from, min.Add(-time.Nanosecond)},
		{max.Add(time.Nanosecond), to},
	}, fetcher.calls)
	assert.Equal(t, 1, rep.calls)
}

func TestRunStoreError(t *testing.T) {
	boom := errors.New("boom")
	rep := &fakeReporter{}

	err := newApp(t, &fakeFetcher{}, &fakeStore{err: boom}, rep).Run(context.Background(), time.Now(), time.Now())
	require.ErrorIs(t, err, boom)
	assert.Zero(t, rep.calls)
}
