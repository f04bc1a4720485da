package application

import (
	"context"
	"time"

	"github.com/ScrpTrx-Go/GoCryptoTags/internal/domain/contracts"
	pkg "github.com/ScrpTrx-Go/GoCryptoTags/pkg/logger"
)

type App struct {
	Fetcher  contracts.ArticleFetcher
	Tagger   contracts.ArticleTagger
	Logger   pkg.Logger
	Store    contracts.ArticleStore
	Reporter contracts.Reporter
}

func NewApp(fetcher contracts.ArticleFetcher, tagger contracts.ArticleTagger, logger pkg.Logger, store contracts.ArticleStore, reporter contracts.Reporter) *App {
	return &App{
		Fetcher:  fetcher,
		Tagger:   tagger,
		Logger:   logger,
		Store:    store,
		Reporter: reporter,
	}
}

func (a *App) Run(ctx context.Context, from, to time.Time) error {
	minTS, maxTS, ok, err := a.Store.GetMinMaxTimestamps(ctx)
	if err != nil {
		a.Logger.Error("Failed to get DB timestamps", "err", err)
		return err
	}

	if !ok {
		a.Logger.Warn("Database is empty, fetching all articles", "from", from, "to", to)
		if err := a.fetchAndSave(ctx, from, to); err != nil {
			return err
		}
	} else {
		if from.Before(minTS) {
			newTo := minTS.Add(-time.Nanosecond)
			a.Logger.Info("Loading older articles", "from", from, "to", newTo)
			if err := a.fetchAndSave(ctx, from, newTo); err != nil {
				return err
			}
		}
		if to.After(maxTS) {
			newFrom := maxTS.Add(time.Nanosecond)
			a.Logger.Info("Loading newer articles", "from", newFrom, "to", to)
			if err := a.fetchAndSave(ctx, newFrom, to); err != nil {
				return err
			}
		}
	}

	if err := a.Reporter.GenerateFullReport(ctx, from, to); err != nil {
		a.Logger.Error("Failed to generate report", "err", err)
		return err
	}
	return nil
}

func (a *App) fetchAndSave(ctx context.Context, from, to time.Time) error {
	fetched := a.Fetcher.RunFetchPipeline(ctx, from, to)
	tagged := a.Tagger.RunTagPipeline(ctx, fetched)

	if err := a.Store.SaveBatch(ctx, tagged); err != nil {
		a.Logger.Error("Failed to save articles", "err", err)
		return err
	}
	return nil
}
