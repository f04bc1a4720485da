package model

import "time"

type Article struct {
	ID        int64
	Link      string
	Text      string
	Timestamp time.Time
	Channel   string
	Keywords  []string
	Tickers   []string
	Projects  []string
	ErrorType string
}

func (a *Article) Tagged() bool {
	return len(a.Keywords) > 0
}
