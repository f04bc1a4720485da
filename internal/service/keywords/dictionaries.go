package keywords

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Alias keys are lowercase, ticker keys uppercase.
type Dictionaries struct {
	ProjectAliases   map[string][]string
	KnownTickers     map[string]struct{}
	TickerNames      map[string][]string
	TickerExclusions map[string]struct{}
}

type DefaultDictionariesCreator struct {
}

func NewDictionariesCreator() DictionariesCreator {
	return &DefaultDictionariesCreator{}
}

func (c *DefaultDictionariesCreator) CreateDictionaries() (*Dictionaries, error) {
	return &Dictionaries{
		ProjectAliases:   copyLabels(projectAliases),
		KnownTickers:     toSet(knownTickers),
		TickerNames:      copyLabels(tickerNames),
		TickerExclusions: toSet(tickerExclusions),
	}, nil
}

type dictionaryFile struct {
	Aliases      map[string][]string `yaml:"aliases"`
	KnownTickers []string            `yaml:"known_tickers"`
	TickerNames  map[string][]string `yaml:"ticker_names"`
	Exclusions   []string            `yaml:"exclusions"`
}

// FileDictionariesCreator merges a YAML file over the built-in tables.
type FileDictionariesCreator struct {
	path string
	base DictionariesCreator
}

func NewFileDictionariesCreator(path string) DictionariesCreator {
	return &FileDictionariesCreator{
		path: path,
		base: NewDictionariesCreator(),
	}
}

func (c *FileDictionariesCreator) CreateDictionaries() (*Dictionaries, error) {
	dict, err := c.base.CreateDictionaries()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", c.path, err)
	}

	var file dictionaryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse dictionary %s: %w", c.path, err)
	}

	dict.merge(file)
	return dict, nil
}

func (d *Dictionaries) merge(file dictionaryFile) {
	for alias, labels := range file.Aliases {
		d.ProjectAliases[strings.ToLower(strings.TrimSpace(alias))] = append([]string(nil), labels...)
	}
	for _, ticker := range file.KnownTickers {
		d.KnownTickers[strings.ToUpper(strings.TrimSpace(ticker))] = struct{}{}
	}
	for ticker, names := range file.TickerNames {
		d.TickerNames[strings.ToUpper(strings.TrimSpace(ticker))] = append([]string(nil), names...)
	}
	for _, word := range file.Exclusions {
		d.TickerExclusions[strings.ToUpper(strings.TrimSpace(word))] = struct{}{}
	}
}

// Validate reports the first malformed entry.
func (d *Dictionaries) Validate() error {
	if len(d.ProjectAliases) == 0 {
		return fmt.Errorf("alias table is empty")
	}
	for alias, labels := range d.ProjectAliases {
		if alias == "" {
			return fmt.Errorf("empty alias key")
		}
		if alias != strings.ToLower(alias) {
			return fmt.Errorf("alias %q is not lowercase", alias)
		}
		if len(labels) == 0 {
			return fmt.Errorf("alias %q has no labels", alias)
		}
		for _, label := range labels {
			if strings.TrimSpace(label) == "" {
				return fmt.Errorf("alias %q has an empty label", alias)
			}
		}
	}
	for ticker, names := range d.TickerNames {
		if !tickerShape.MatchString(ticker) {
			return fmt.Errorf("ticker name key %q is not a ticker", ticker)
		}
		for _, name := range names {
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("ticker %q has an empty name", ticker)
			}
		}
	}
	return nil
}
