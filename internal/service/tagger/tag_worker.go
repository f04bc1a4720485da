package tagger

import (
	"context"
	"strings"
	"time"

	"github.com/ScrpTrx-Go/GoCryptoTags/internal/domain/contracts"
	"github.com/ScrpTrx-Go/GoCryptoTags/internal/domain/model"
	"github.com/ScrpTrx-Go/GoCryptoTags/internal/infra/metrics"
	pkg "github.com/ScrpTrx-Go/GoCryptoTags/pkg/logger"
)

const EmptyTextError = "Empty text!"

type TagWorker struct {
	extractor contracts.KeywordExtractor
	log       pkg.Logger
	tagged    int
	untagged  int
}

func NewTagWorker(extractor contracts.KeywordExtractor, log pkg.Logger) TagArticleWorker {
	return &TagWorker{
		extractor: extractor,
		log:       log,
	}
}

func (w *TagWorker) Run(ctx context.Context, in <-chan *model.Article, out chan<- *model.Article) {
	start := time.Now()
	for article := range in {
		select {
		case <-ctx.Done():
			w.log.Warn("Context canceled in tag worker")
			return
		default:
		}

		w.Tag(article)

		select {
		case <-ctx.Done():
			w.log.Warn("Context canceled during article output")
			return
		case out <- article:
		}
	}
	w.log.Info("TagWorker completed", "tagged", w.tagged, "untagged", w.untagged, "duration", time.Since(start).String())
}

func (w *TagWorker) Tag(article *model.Article) {
	text := strings.TrimSpace(PlainText(article.Text))
	if text == "" {
		article.ErrorType = EmptyTextError
		w.untagged++
		metrics.ArticlesTagged.WithLabelValues("empty").Inc()
		return
	}

	start := time.Now()
	article.Keywords = w.extractor.Extract(text)
	article.Tickers = w.extractor.ExtractTickersOnly(text)
	article.Projects = w.extractor.ExtractProjectsOnly(text)
	metrics.TagDuration.Observe(time.Since(start).Seconds())

	if !article.Tagged() {
		w.untagged++
		metrics.ArticlesTagged.WithLabelValues("untagged").Inc()
		return
	}

	w.tagged++
	metrics.ArticlesTagged.WithLabelValues("tagged").Inc()
	for _, label := range article.Keywords {
		metrics.LabelsExtracted.WithLabelValues(label).Inc()
	}
	w.log.Debug("Article tagged", "id", article.ID, "channel", article.Channel, "keywords", article.Keywords)
}
