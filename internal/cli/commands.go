package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ScrpTrx-Go/GoCryptoTags/internal/api"
	"github.com/ScrpTrx-Go/GoCryptoTags/internal/config"
	"github.com/ScrpTrx-Go/GoCryptoTags/internal/service/keywords"
	pkg "github.com/ScrpTrx-Go/GoCryptoTags/pkg/logger"
	"github.com/spf13/cobra"
)

const (
	defaultConfigPath = "./internal/config/config.yaml"
	dateLayout        = "2006-01-02"
)

// NewRootCommand holds the commands that need no Telegram client.
func NewRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "cryptotags",
		Short:         "Tag crypto news with tickers and project names",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "path to config.yaml")

	root.AddCommand(
		newServeCommand(&configPath),
		newExtractCommand(),
	)
	return root
}

func newServeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the keyword extraction HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, zaplogger, err := Setup(*configPath)
			if err != nil {
				return err
			}
			defer zaplogger.Sync()

			extractor, err := BuildExtractor(cfg.Keywords.DictionaryPath)
			if err != nil {
				return err
			}
			cached, err := keywords.NewCachedExtractor(extractor, cfg.Keywords.CacheSize)
			if err != nil {
				return err
			}

			apiLog := zaplogger.WithPackage("api")
			router := api.NewRouter(api.NewKeywordsHandler(cached, apiLog, cfg.API.MaxBodyBytes), apiLog, cfg.API.CORSOrigins)

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return api.NewServer(cfg.API, router, apiLog).Run(ctx)
		},
	}
}

func newExtractCommand() *cobra.Command {
	var mode, dictionaryPath string

	cmd := &cobra.Command{
		Use:   "extract [text...]",
		Short: "Print the labels found in text (arguments, or stdin when none)",
		RunE: func(cmd *cobra.Command, args []string) error {
			extractor, err := BuildExtractor(dictionaryPath)
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(data)
			}

			var labels []string
			switch mode {
			case api.ModeAll:
				labels = extractor.Extract(text)
			case api.ModeTickers:
				labels = extractor.ExtractTickersOnly(text)
			case api.ModeProjects:
				labels = extractor.ExtractProjectsOnly(text)
			default:
				return fmt.Errorf("unknown mode %q (want %s, %s or %s)", mode, api.ModeAll, api.ModeTickers, api.ModeProjects)
			}

			for _, label := range labels {
				fmt.Fprintln(cmd.OutOrStdout(), label)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", api.ModeAll, "extract, tickers or projects")
	cmd.Flags().StringVar(&dictionaryPath, "dictionary", "", "YAML dictionary merged over the built-in tables")
	return cmd
}

func Setup(configPath string) (config.Config, *pkg.ZapLogger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("error load config: %w", err)
	}

	zaplogger, err := pkg.NewZapLogger(cfg.Logger)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("error initialize logger: %w", err)
	}
	return cfg, zaplogger, nil
}

func BuildExtractor(dictionaryPath string) (*keywords.Extractor, error) {
	creator := keywords.NewDictionariesCreator()
	if dictionaryPath != "" {
		creator = keywords.NewFileDictionariesCreator(dictionaryPath)
	}

	dict, err := creator.CreateDictionaries()
	if err != nil {
		return nil, err
	}
	return keywords.NewExtractor(dict)
}

// ParsePeriod defaults to the previous calendar day up to now's midnight.
func ParsePeriod(fromFlag, toFlag string, now time.Time) (time.Time, time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	from, to := today.AddDate(0, 0, -1), today

	var err error
	if fromFlag != "" {
		if from, err = time.ParseInLocation(dateLayout, fromFlag, now.Location()); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --from: %w", err)
		}
	}
	if toFlag != "" {
		if to, err = time.ParseInLocation(dateLayout, toFlag, now.Location()); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --to: %w", err)
		}
	}
	if !from.Before(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("--from %s is not before --to %s", from.Format(dateLayout), to.Format(dateLayout))
	}
	return from, to, nil
}
