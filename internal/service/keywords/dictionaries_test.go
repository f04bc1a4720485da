package keywords_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ScrpTrx-Go/GoCryptoTags/internal/service/keywords"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDictionariesAreCopies(t *testing.T) {
	creator := keywords.NewDictionariesCreator()

	first, err := creator.CreateDictionaries()
	require.NoError(t, err)
	require.NoError(t, first.Validate())

	first.ProjectAliases["bitcoin"][0] = "MUTATED"
	delete(first.KnownTickers, "BTC")

	second, err := creator.CreateDictionaries()
	require.NoError(t, err)
	assert.Equal(t, []string{"BTC", "Bitcoin"}, second.ProjectAliases["bitcoin"])
	assert.Contains(t, second.KnownTickers, "BTC")
}

func TestFileDictionariesExtendDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictionary.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
aliases:
  Arbitrum: [ARB, Arbitrum]
  ripple: [XRP, Ripple Labs]
known_tickers: [arb]
ticker_names:
  arb: [Arbitrum]
exclusions: [wen]
`), 0o644))

	dict, err := keywords.NewFileDictionariesCreator(path).CreateDictionaries()
	require.NoError(t, err)

	assert.Equal(t, []string{"ARB", "Arbitrum"}, dict.ProjectAliases["arbitrum"])
	assert.Equal(t, []string{"XRP", "Ripple Labs"}, dict.ProjectAliases["ripple"])
	assert.Contains(t, dict.KnownTickers, "ARB")
	assert.Contains(t, dict.TickerExclusions, "WEN")
	assert.Equal(t, []string{"BTC", "Bitcoin"}, dict.ProjectAliases["bitcoin"])

	e, err := keywords.NewExtractor(dict)
	require.NoError(t, err)
	assert.Equal(t, []string{"ARB", "Arbitrum"}, e.Extract("ARB airdrop, WEN listing?"))
	assert.Equal(t, []string{"BTC", "Bitcoin"}, e.Extract("bitcoin"))
}

func TestFileDictionariesErrors(t *testing.T) {
	_, err := keywords.NewFileDictionariesCreator(filepath.Join(t.TempDir(), "missing.yaml")).CreateDictionaries()
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("aliases: [not, a, map]"), 0o644))
	_, err = keywords.NewFileDictionariesCreator(path).CreateDictionaries()
	require.Error(t, err)
}
