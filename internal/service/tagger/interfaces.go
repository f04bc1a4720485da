package tagger

import (
	"context"

	"github.com/ScrpTrx-Go/GoCryptoTags/internal/domain/model"
)

type TagArticleWorker interface {
	Run(ctx context.Context, in <-chan *model.Article, out chan<- *model.Article)
}
