package database

import (
	"context"
	"fmt"
	"time"

	"github.com/ScrpTrx-Go/GoCryptoTags/internal/config"
	"github.com/ScrpTrx-Go/GoCryptoTags/internal/domain/model"
	pkg "github.com/ScrpTrx-Go/GoCryptoTags/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const articlesTable = "articles"

var articleColumns = []string{"id", "link", "text", "timestamp", "channel", "keywords", "tickers", "projects", "error_type"}

const createArticlesTable = `CREATE TABLE IF NOT EXISTS articles (
	id         BIGINT      NOT NULL,
	link       TEXT        NOT NULL DEFAULT '',
	text       TEXT        NOT NULL,
	timestamp  TIMESTAMPTZ NOT NULL,
	channel    TEXT        NOT NULL,
	keywords   TEXT[]      NOT NULL DEFAULT '{}',
	tickers    TEXT[]      NOT NULL DEFAULT '{}',
	projects   TEXT[]      NOT NULL DEFAULT '{}',
	error_type TEXT        NOT NULL DEFAULT '',
	PRIMARY KEY (channel, id)
)`

type Database struct {
	Pool *pgxpool.Pool
	Log  pkg.Logger
}

func NewPostgresPool(ctx context.Context, log pkg.Logger, cfg config.DatabaseConfig) (*Database, error) {
	pool, err := pgxpool.New(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	return &Database{
		Pool: pool,
		Log:  log,
	}, nil
}

func (d *Database) EnsureSchema(ctx context.Context) error {
	if _, err := d.Pool.Exec(ctx, createArticlesTable); err != nil {
		return fmt.Errorf("create articles table: %w", err)
	}
	return nil
}

func (d *Database) SaveBatch(ctx context.Context, in <-chan *model.Article) error {
	articles := make([]*model.Article, 0, 1000)
	for article := range in {
		articles = append(articles, article)
	}

	if len(articles) == 0 {
		d.Log.Info("No articles to save")
		return nil
	}

	_, err := d.Pool.CopyFrom(
		ctx,
		pgx.Identifier{articlesTable},
		articleColumns,
		pgx.CopyFromRows(articleRows(articles)),
	)
	if err != nil {
		d.Log.Error("CopyFrom failed", "err", err)
		return fmt.Errorf("copy articles: %w", err)
	}

	d.Log.Info("Saved articles to database", "count", len(articles))
	return nil
}

func articleRows(articles []*model.Article) [][]interface{} {
	rows := make([][]interface{}, 0, len(articles))
	for _, a := range articles {
		rows = append(rows, []interface{}{
			a.ID,
			a.Link,
			a.Text,
			a.Timestamp,
			a.Channel,
			nonNil(a.Keywords),
			nonNil(a.Tickers),
			nonNil(a.Projects),
			a.ErrorType,
		})
	}
	return rows
}

func nonNil(labels []string) []string {
	if labels == nil {
		return []string{}
	}
	return labels
}

func (d *Database) GetMinMaxTimestamps(ctx context.Context) (minTS time.Time, maxTS time.Time, ok bool, err error) {
	row := d.Pool.QueryRow(ctx, `SELECT MIN(timestamp), MAX(timestamp) FROM articles`)

	var minPtr, maxPtr *time.Time
	if err := row.Scan(&minPtr, &maxPtr); err != nil {
		return time.Time{}, time.Time{}, false, err
	}

	if minPtr == nil || maxPtr == nil {
		return time.Time{}, time.Time{}, false, nil
	}

	return *minPtr, *maxPtr, true, nil
}

func (d *Database) GetArticlesByPeriod(ctx context.Context, from, to time.Time) ([]*model.Article, error) {
	query := `SELECT id, link, text, timestamp, channel, keywords, tickers, projects, error_type
			  FROM articles
			  WHERE timestamp BETWEEN $1 AND $2
			  ORDER BY timestamp ASC`

	rows, err := d.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles by period: %w", err)
	}
	defer rows.Close()

	var articles []*model.Article
	for rows.Next() {
		var a model.Article
		err := rows.Scan(
			&a.ID,
			&a.Link,
			&a.Text,
			&a.Timestamp,
			&a.Channel,
			&a.Keywords,
			&a.Tickers,
			&a.Projects,
			&a.ErrorType,
		)
		if err != nil {
			d.Log.Warn("Failed to scan article", "err", err)
			continue
		}
		articles = append(articles, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}
	return articles, nil
}
