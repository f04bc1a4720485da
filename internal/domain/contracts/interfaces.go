package contracts

import (
	"context"
	"time"

	"github.com/ScrpTrx-Go/GoCryptoTags/internal/domain/model"
)

// KeywordExtractor maps text to sorted, deduplicated labels. Implementations
// never return nil and never fail.
type KeywordExtractor interface {
	Extract(text string) []string
	ExtractTickersOnly(text string) []string
	ExtractProjectsOnly(text string) []string
}

type ArticleFetcher interface {
	RunFetchPipeline(ctx context.Context, from, to time.Time) <-chan *model.Article
}

type ArticleTagger interface {
	RunTagPipeline(ctx context.Context, in <-chan *model.Article) <-chan *model.Article
}

type ArticleStore interface {
	SaveBatch(ctx context.Context, in <-chan *model.Article) error
	GetMinMaxTimestamps(ctx context.Context) (minTS time.Time, maxTS time.Time, ok bool, err error)
	GetArticlesByPeriod(ctx context.Context, from, to time.Time) ([]*model.Article, error)
}

type Reporter interface {
	GenerateFullReport(ctx context.Context, from, to time.Time) error
}
