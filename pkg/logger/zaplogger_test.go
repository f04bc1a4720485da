package pkg_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ScrpTrx-Go/GoCryptoTags/internal/config"
	pkg "github.com/ScrpTrx-Go/GoCryptoTags/pkg/logger"
	"github.com/stretchr/testify/require"
)

func TestZapLoggerWritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tags.log")

	zaplogger, err := pkg.NewZapLogger(config.LoggerConfig{Level: "debug", FilePath: path, Production: true})
	require.NoError(t, err)

	zaplogger.WithPackage("keywords").Info("extracted", "count", 3)
	_ = zaplogger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"M":"extracted"`)
	require.Contains(t, string(data), `"package":"keywords"`)
	require.Contains(t, string(data), `"count":3`)
}

func TestZapLoggerInvalidLevelFallsBack(t *testing.T) {
	zaplogger, err := pkg.NewZapLogger(config.LoggerConfig{Level: "loud"})
	require.NoError(t, err)
	require.NotNil(t, zaplogger)
}

func TestZapLoggerBadFilePath(t *testing.T) {
	_, err := pkg.NewZapLogger(config.LoggerConfig{Level: "info", FilePath: filepath.Join(t.TempDir(), "missing", "x.log")})
	require.Error(t, err)
}
