package tagger

import (
	"context"
	"sync"

	"github.com/ScrpTrx-Go/GoCryptoTags/internal/domain/model"
	pkg "github.com/ScrpTrx-Go/GoCryptoTags/pkg/logger"
)

type ArticlePipeline struct {
	Log     pkg.Logger
	Workers []TagArticleWorker
}

func NewArticlePipeline(log pkg.Logger, workers []TagArticleWorker) *ArticlePipeline {
	return &ArticlePipeline{
		Log:     log,
		Workers: workers,
	}
}

func (p *ArticlePipeline) RunTagPipeline(ctx context.Context, in <-chan *model.Article) <-chan *model.Article {
	out := make(chan *model.Article)
	var wg sync.WaitGroup

	for _, worker := range p.Workers {
		wg.Add(1)
		go func(w TagArticleWorker) {
			defer wg.Done()
			w.Run(ctx, in, out)
		}(worker)
	}

	go func() {
		wg.Wait()
		close(out)
		p.Log.Debug("Tag pipeline drained", "workers", len(p.Workers))
	}()

	return out
}
