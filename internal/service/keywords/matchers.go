package keywords

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cloudflare/ahocorasick"
)

const tickerPattern = `\b[A-Z]{2,5}\b`

var tickerShape = regexp.MustCompile(`^[A-Z]{2,5}$`)

type DefaultMatchersCreator struct {
	dict    *Dictionaries
	aliases []string
}

// A nil prefilter lets every text through.
type Matchers struct {
	AliasPattern    *regexp.Regexp
	AliasAnchors    []*regexp.Regexp
	TickerPattern   *regexp.Regexp
	AliasPrefilter  *ahocorasick.Matcher
	TickerPrefilter *ahocorasick.Matcher
}

// NewMatcherCreator expects aliases ordered as GetAliasKeys returns them.
func NewMatcherCreator(dict *Dictionaries, aliases []string) MatchersCreator {
	return &DefaultMatchersCreator{
		dict:    dict,
		aliases: aliases,
	}
}

func (m *DefaultMatchersCreator) CreateMatchers() (Matchers, error) {
	if len(m.aliases) == 0 {
		return Matchers{}, fmt.Errorf("no aliases to match")
	}

	quoted := make([]string, 0, len(m.aliases))
	anchors := make([]*regexp.Regexp, 0, len(m.aliases))
	for _, alias := range m.aliases {
		q := regexp.QuoteMeta(alias)
		quoted = append(quoted, q)

		anchor, err := regexp.Compile(`(?i)^` + q)
		if err != nil {
			return Matchers{}, fmt.Errorf("compile alias %q: %w", alias, err)
		}
		anchors = append(anchors, anchor)
	}
	aliasPattern, err := regexp.Compile(`(?i)(?:` + strings.Join(quoted, "|") + `)`)
	if err != nil {
		return Matchers{}, fmt.Errorf("compile alias pattern: %w", err)
	}

	return Matchers{
		AliasPattern:    aliasPattern,
		AliasAnchors:    anchors,
		TickerPattern:   regexp.MustCompile(tickerPattern),
		AliasPrefilter:  ahocorasick.NewStringMatcher(m.aliases),
		TickerPrefilter: ahocorasick.NewStringMatcher(setKeys(m.dict.KnownTickers)),
	}, nil
}

// FindAliases returns whole-word aliases, leftmost first, without overlaps.
func (m Matchers) FindAliases(text string) []string {
	var found []string
	for pos := 0; pos < len(text); {
		loc := m.AliasPattern.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]
		if end, ok := m.wholeAliasAt(text, start, pos+loc[1]); ok {
			found = append(found, text[start:end])
			pos = end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		pos = start + size
	}
	return found
}

func (m Matchers) wholeAliasAt(text string, start, end int) (int, bool) {
	if !atWordBoundary(text, start) {
		return 0, false
	}
	if atWordBoundary(text, end) {
		return end, true
	}
	for _, anchor := range m.AliasAnchors {
		loc := anchor.FindStringIndex(text[start:])
		if loc != nil && atWordBoundary(text, start+loc[1]) {
			return start + loc[1], true
		}
	}
	return 0, false
}

func (m Matchers) FindTickers(text string) []string {
	locs := m.TickerPattern.FindAllStringIndex(text, -1)
	tickers := make([]string, 0, len(locs))
	for _, loc := range locs {
		if atWordBoundary(text, loc[0]) && atWordBoundary(text, loc[1]) {
			tickers = append(tickers, text[loc[0]:loc[1]])
		}
	}
	return tickers
}

// Non-ASCII text always passes: lowering can fold it onto ASCII.
func (m Matchers) mayContainAlias(text string) bool {
	if m.AliasPrefilter == nil {
		return true
	}
	lowered := strings.ToLower(text)
	if !isASCII(lowered) {
		return true
	}
	return len(m.AliasPrefilter.MatchThreadSafe([]byte(lowered))) > 0
}

func (m Matchers) mayContainTicker(text string) bool {
	if m.TickerPrefilter == nil {
		return true
	}
	return len(m.TickerPrefilter.MatchThreadSafe([]byte(text))) > 0
}

// Letters and digits of any script are word runes.
func atWordBoundary(text string, i int) bool {
	before, after := false, false
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:i])
		before = isWordRune(r)
	}
	if i < len(text) {
		r, _ := utf8.DecodeRuneInString(text[i:])
		after = isWordRune(r)
	}
	return before != after
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
