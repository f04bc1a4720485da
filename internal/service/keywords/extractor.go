// Package keywords maps crypto news text to ticker and project labels.
package keywords

import (
	"errors"
	"fmt"
	"strings"
)

// Extractor is safe for concurrent use.
type Extractor struct {
	dict     *Dictionaries
	matchers Matchers
}

func NewExtractor(dict *Dictionaries) (*Extractor, error) {
	if dict == nil {
		return nil, errors.New("keywords: nil dictionaries")
	}
	if err := dict.Validate(); err != nil {
		return nil, fmt.Errorf("keywords: invalid dictionaries: %w", err)
	}

	matchers, err := NewMatcherCreator(dict, GetAliasKeys(dict.ProjectAliases)).CreateMatchers()
	if err != nil {
		return nil, fmt.Errorf("keywords: build matchers: %w", err)
	}

	return &Extractor{
		dict:     dict,
		matchers: matchers,
	}, nil
}

func NewDefaultExtractor() (*Extractor, error) {
	dict, err := NewDictionariesCreator().CreateDictionaries()
	if err != nil {
		return nil, err
	}
	return NewExtractor(dict)
}

func MustNewExtractor(dict *Dictionaries) *Extractor {
	e, err := NewExtractor(dict)
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Extractor) Extract(text string) []string {
	found := make(map[string]struct{})
	if text == "" {
		return setKeys(found)
	}

	for _, alias := range e.aliasMatches(text) {
		for _, label := range e.dict.ProjectAliases[strings.ToLower(alias)] {
			found[label] = struct{}{}
		}
	}

	for _, ticker := range e.tickerMatches(text) {
		found[ticker] = struct{}{}
		for _, name := range e.dict.TickerNames[ticker] {
			found[name] = struct{}{}
		}
	}

	return setKeys(found)
}

func (e *Extractor) ExtractTickersOnly(text string) []string {
	found := make(map[string]struct{})
	if text == "" {
		return setKeys(found)
	}

	for _, ticker := range e.tickerMatches(text) {
		found[ticker] = struct{}{}
	}
	return setKeys(found)
}

// ExtractProjectsOnly returns matched aliases capitalized ("STELLAR" -> "Stellar"),
// skipping ticker spellings such as "xlm".
func (e *Extractor) ExtractProjectsOnly(text string) []string {
	found := make(map[string]struct{})
	if text == "" {
		return setKeys(found)
	}

	for _, alias := range e.aliasMatches(text) {
		key := strings.ToLower(alias)
		if _, ok := e.dict.ProjectAliases[key]; !ok {
			continue
		}
		if _, ok := e.dict.KnownTickers[strings.ToUpper(key)]; ok {
			continue
		}
		found[capitalize(alias)] = struct{}{}
	}
	return setKeys(found)
}

func (e *Extractor) aliasMatches(text string) []string {
	if !e.matchers.mayContainAlias(text) {
		return nil
	}
	return e.matchers.FindAliases(text)
}

// Exclusions win over known tickers.
func (e *Extractor) tickerMatches(text string) []string {
	if !e.matchers.mayContainTicker(text) {
		return nil
	}

	candidates := e.matchers.FindTickers(text)
	tickers := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if _, excluded := e.dict.TickerExclusions[candidate]; excluded {
			continue
		}
		if _, known := e.dict.KnownTickers[candidate]; known {
			tickers = append(tickers, candidate)
		}
	}
	return tickers
}
