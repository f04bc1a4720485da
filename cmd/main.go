package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ScrpTrx-Go/GoCryptoTags/application"
	"github.com/ScrpTrx-Go/GoCryptoTags/internal/cli"
	"github.com/ScrpTrx-Go/GoCryptoTags/internal/config"
	"github.com/ScrpTrx-Go/GoCryptoTags/internal/infra/database"
	fetcher "github.com/ScrpTrx-Go/GoCryptoTags/internal/infra/telegram"
	"github.com/ScrpTrx-Go/GoCryptoTags/internal/service/reporter"
	"github.com/ScrpTrx-Go/GoCryptoTags/internal/service/tagger"
	pkg "github.com/ScrpTrx-Go/GoCryptoTags/pkg/logger"
	"github.com/spf13/cobra"
)

func main() {
	root := cli.NewRootCommand()
	root.AddCommand(newRunCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRunCommand() *cobra.Command {
	var fromFlag, toFlag string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fetch channel history, tag it, store it and write the keyword report",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := cli.ParsePeriod(fromFlag, toFlag, time.Now())
			if err != nil {
				return err
			}

			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			cfg, zaplogger, err := cli.Setup(configPath)
			if err != nil {
				return err
			}
			defer zaplogger.Sync()

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return runPipeline(ctx, cfg, zaplogger, from, to)
		},
	}
	cmd.Flags().StringVar(&fromFlag, "from", "", "period start, YYYY-MM-DD (default: yesterday)")
	cmd.Flags().StringVar(&toFlag, "to", "", "period end, YYYY-MM-DD (default: today)")
	return cmd
}

func runPipeline(ctx context.Context, cfg config.Config, zaplogger *pkg.ZapLogger, from, to time.Time) error {
	extractor, err := cli.BuildExtractor(cfg.Keywords.DictionaryPath)
	if err != nil {
		return err
	}

	tdlibclient, err := fetcher.NewClient(cfg.TDLib)
	if err != nil {
		zaplogger.Error("tdlib client init failed", "err", err)
		return err
	}
	defer func() {
		if _, err := tdlibclient.Close(); err != nil {
			zaplogger.Error("tdlib client close failed", "err", err)
		}
	}()

	tdlibFetcher, err := fetcher.NewTDLibFetcher(tdlibclient, zaplogger.WithPackage("telegram"), cfg.TDLib)
	if err != nil {
		zaplogger.Error("tdlib fetcher init failed", "err", err)
		return err
	}

	taggerLog := zaplogger.WithPackage("tagger")
	workers := make([]tagger.TagArticleWorker, 0, cfg.Tagger.Workers)
	for i := 0; i < cfg.Tagger.Workers; i++ {
		workers = append(workers, tagger.NewTagWorker(extractor, taggerLog))
	}
	pipeline := tagger.NewArticlePipeline(taggerLog, workers)

	db, err := database.NewPostgresPool(ctx, zaplogger.WithPackage("database"), cfg.DatabaseConfig)
	if err != nil {
		zaplogger.Error("failed to init DB", "err", err)
		return err
	}
	defer db.Pool.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		return err
	}

	keywordReporter := reporter.NewReporter(zaplogger.WithPackage("reporter"), db, cfg.Reporter)

	app := application.NewApp(tdlibFetcher, pipeline, zaplogger, db, keywordReporter)
	return app.Run(ctx, from, to)
}

