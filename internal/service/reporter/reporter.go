package reporter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"baliance.com/gooxml/document"
	"baliance.com/gooxml/schema/soo/wml"
	"github.com/ScrpTrx-Go/GoCryptoTags/internal/config"
	"github.com/ScrpTrx-Go/GoCryptoTags/internal/domain/contracts"
	"github.com/ScrpTrx-Go/GoCryptoTags/internal/domain/model"
	pkg "github.com/ScrpTrx-Go/GoCryptoTags/pkg/logger"
	"github.com/xuri/excelize/v2"
)

const (
	docxName        = "keywords.docx"
	xlsxName        = "keywords.xlsx"
	keywordsSheet   = "Keywords"
	channelsSheet   = "Channels"
	timestampLayout = "2006-01-02 15:04:05"
)

type Reporter struct {
	log   pkg.Logger
	store contracts.ArticleStore
	cfg   config.ReporterConfig
}

func NewReporter(log pkg.Logger, store contracts.ArticleStore, cfg config.ReporterConfig) *Reporter {
	return &Reporter{
		log:   log,
		store: store,
		cfg:   cfg,
	}
}

func (r *Reporter) GenerateFullReport(ctx context.Context, from, to time.Time) error {
	r.log.Info("Generating keyword report", "from", from, "to", to)

	articles, err := r.store.GetArticlesByPeriod(ctx, from, to)
	if err != nil {
		r.log.Error("Failed to fetch articles by period", "err", err)
		return err
	}

	if len(articles) == 0 {
		r.log.Warn("No articles found for report period", "from", from, "to", to)
		return nil
	}

	rd := NewReportData(r.log)
	rd.Process(articles)

	if err := rd.SaveAll(r.cfg.OutputDir, r.cfg.TopLimit); err != nil {
		r.log.Error("Failed to save report", "err", err)
		return err
	}

	r.log.Info("Report generation completed successfully", "dir", r.cfg.OutputDir)
	return nil
}

type KeywordCounter struct {
	Label    string
	Mentions int
	IsTicker bool
	Channels map[string]int
	Articles []*model.Article
}

type ChannelCounter struct {
	Channel  string
	Articles int
	Tagged   int
}

type ReportData struct {
	log      pkg.Logger
	keywords map[string]*KeywordCounter
	channels map[string]*ChannelCounter
	errors   map[string][]*model.Article
	untagged []*model.Article
}

func NewReportData(log pkg.Logger) *ReportData {
	return &ReportData{
		log:      log,
		keywords: make(map[string]*KeywordCounter),
		channels: make(map[string]*ChannelCounter),
		errors:   make(map[string][]*model.Article),
	}
}

func (r *ReportData) Process(articles []*model.Article) {
	r.log.Info("Processing articles", "total", len(articles))
	for _, article := range articles {
		ch := r.channel(article.Channel)
		ch.Articles++

		if article.ErrorType != "" {
			r.errors[article.ErrorType] = append(r.errors[article.ErrorType], article)
			continue
		}
		if !article.Tagged() {
			r.untagged = append(r.untagged, article)
			continue
		}

		ch.Tagged++
		tickers := make(map[string]struct{}, len(article.Tickers))
		for _, ticker := range article.Tickers {
			tickers[ticker] = struct{}{}
		}
		for _, label := range article.Keywords {
			kc := r.keyword(label)
			kc.Mentions++
			kc.Channels[article.Channel]++
			kc.Articles = append(kc.Articles, article)
			if _, ok := tickers[label]; ok {
				kc.IsTicker = true
			}
		}
	}
	r.log.Info("Finished processing articles", "keywords", len(r.keywords), "channels", len(r.channels), "untagged", len(r.untagged), "errors", len(r.errors))
}

func (r *ReportData) channel(name string) *ChannelCounter {
	ch, ok := r.channels[name]
	if !ok {
		ch = &ChannelCounter{Channel: name}
		r.channels[name] = ch
	}
	return ch
}

func (r *ReportData) keyword(label string) *KeywordCounter {
	kc, ok := r.keywords[label]
	if !ok {
		kc = &KeywordCounter{Label: label, Channels: make(map[string]int)}
		r.keywords[label] = kc
	}
	return kc
}

func (r *ReportData) Ranking() []*KeywordCounter {
	ranking := make([]*KeywordCounter, 0, len(r.keywords))
	for _, kc := range r.keywords {
		ranking = append(ranking, kc)
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Mentions != ranking[j].Mentions {
			return ranking[i].Mentions > ranking[j].Mentions
		}
		return ranking[i].Label < ranking[j].Label
	})
	return ranking
}

func (r *ReportData) Channels() []*ChannelCounter {
	channels := make([]*ChannelCounter, 0, len(r.channels))
	for _, ch := range r.channels {
		channels = append(channels, ch)
	}
	sort.Slice(channels, func(i, j int) bool { return channels[i].Channel < channels[j].Channel })
	return channels
}

func (r *ReportData) ErrorTypes() []string {
	types := make([]string, 0, len(r.errors))
	for errType := range r.errors {
		types = append(types, errType)
	}
	sort.Strings(types)
	return types
}

// topLimit caps the keywords in the docx; zero means all.
func (r *ReportData) SaveAll(dir string, topLimit int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	if err := r.saveDoc(filepath.Join(dir, docxName), topLimit); err != nil {
		r.log.Error("Failed to save keywords.docx", "err", err)
		return err
	}
	if err := r.saveExcel(filepath.Join(dir, xlsxName)); err != nil {
		r.log.Error("Failed to save Excel report", "err", err)
		return err
	}
	r.log.Info("All report files saved successfully")
	return nil
}

func (r *ReportData) saveDoc(path string, topLimit int) error {
	doc := document.New()

	ranking := r.Ranking()
	if topLimit > 0 && len(ranking) > topLimit {
		ranking = ranking[:topLimit]
	}

	for _, kc := range ranking {
		para := doc.AddParagraph()
		para.SetStyle("Heading1")
		para.Properties().SetAlignment(wml.ST_JcCenter)
		run := para.AddRun()
		run.Properties().SetBold(true)
		run.AddText(fmt.Sprintf("%s (%d)", kc.Label, kc.Mentions))

		articles := append([]*model.Article(nil), kc.Articles...)
		sort.Slice(articles, func(i, j int) bool {
			return articles[i].Timestamp.Before(articles[j].Timestamp)
		})
		for _, article := range articles {
			addArticle(doc, article)
		}
	}

	if len(r.untagged) > 0 {
		para := doc.AddParagraph()
		para.SetStyle("Heading1")
		para.AddRun().AddText(fmt.Sprintf("Untagged (%d)", len(r.untagged)))
		for _, article := range r.untagged {
			addArticle(doc, article)
		}
	}

	for _, errType := range r.ErrorTypes() {
		para := doc.AddParagraph()
		para.SetStyle("Heading1")
		para.AddRun().AddText(errType)
		for _, article := range r.errors[errType] {
			addArticle(doc, article)
		}
	}

	return doc.SaveToFile(path)
}

func addArticle(doc *document.Document, article *model.Article) {
	doc.AddParagraph().AddRun().AddText(fmt.Sprintf("%s | %s", article.Timestamp.Format(timestampLayout), article.Channel))
	if len(article.Keywords) > 0 {
		doc.AddParagraph().AddRun().AddText(strings.Join(article.Keywords, ", "))
	}

	for idx, line := range strings.Split(article.Text, "\n") {
		para := doc.AddParagraph()
		para.Properties().SetAlignment(wml.ST_JcBoth)
		run := para.AddRun()
		if idx == 0 {
			run.Properties().SetBold(true)
		}
		run.AddText(strings.TrimSpace(line))
	}

	if article.Link != "" {
		hl := doc.AddParagraph().AddHyperLink()
		hl.SetTarget(article.Link)
		run := hl.AddRun()
		run.Properties().SetStyle("Hyperlink")
		run.AddText("Open in Telegram")
	}

	doc.AddParagraph().AddRun().AddText("----------")
}

func (r *ReportData) saveExcel(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", keywordsSheet); err != nil {
		return err
	}
	header := []interface{}{"Label", "Mentions", "Ticker", "Channels"}
	if err := f.SetSheetRow(keywordsSheet, "A1", &header); err != nil {
		return err
	}
	for i, kc := range r.Ranking() {
		row := []interface{}{kc.Label, kc.Mentions, kc.IsTicker, formatChannels(kc.Channels)}
		if err := f.SetSheetRow(keywordsSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(channelsSheet); err != nil {
		return err
	}
	header = []interface{}{"Channel", "Articles", "Tagged"}
	if err := f.SetSheetRow(channelsSheet, "A1", &header); err != nil {
		return err
	}
	for i, ch := range r.Channels() {
		row := []interface{}{ch.Channel, ch.Articles, ch.Tagged}
		if err := f.SetSheetRow(channelsSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func formatChannels(channels map[string]int) string {
	names := make([]string, 0, len(channels))
	for name := range channels {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s:%d", name, channels[name]))
	}
	return strings.Join(parts, ", ")
}
