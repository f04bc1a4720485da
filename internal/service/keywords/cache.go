package keywords

import (
	"fmt"

	"github.com/ScrpTrx-Go/GoCryptoTags/internal/domain/contracts"
	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedExtractor memoizes results per text.
type CachedExtractor struct {
	inner    contracts.KeywordExtractor
	all      *lru.Cache[string, []string]
	tickers  *lru.Cache[string, []string]
	projects *lru.Cache[string, []string]
}

func NewCachedExtractor(inner contracts.KeywordExtractor, size int) (*CachedExtractor, error) {
	if inner == nil {
		return nil, fmt.Errorf("keywords: nil extractor")
	}
	if size <= 0 {
		return nil, fmt.Errorf("keywords: cache size must be positive, got %d", size)
	}

	all, err := lru.New[string, []string](size)
	if err != nil {
		return nil, err
	}
	tickers, err := lru.New[string, []string](size)
	if err != nil {
		return nil, err
	}
	projects, err := lru.New[string, []string](size)
	if err != nil {
		return nil, err
	}

	return &CachedExtractor{
		inner:    inner,
		all:      all,
		tickers:  tickers,
		projects: projects,
	}, nil
}

func (c *CachedExtractor) Extract(text string) []string {
	return cached(c.all, text, c.inner.Extract)
}

func (c *CachedExtractor) ExtractTickersOnly(text string) []string {
	return cached(c.tickers, text, c.inner.ExtractTickersOnly)
}

func (c *CachedExtractor) ExtractProjectsOnly(text string) []string {
	return cached(c.projects, text, c.inner.ExtractProjectsOnly)
}

func (c *CachedExtractor) Len() int {
	return c.all.Len()
}

func cached(cache *lru.Cache[string, []string], text string, extract func(string) []string) []string {
	if result, ok := cache.Get(text); ok {
		return clone(result)
	}
	result := extract(text)
	cache.Add(text, clone(result))
	return result
}

func clone(labels []string) []string {
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}
