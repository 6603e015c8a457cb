package xlog

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"

	"deedles.dev/xgeom/internal/config"
)

func TestInit(t *testing.T) {
	var buf bytes.Buffer
	c := config.Default()
	c.LogLevel = "warn"
	c.LogFile = filepath.Join(t.TempDir(), "geomcheck.log")

	closer, err := initTo(&buf, c)
	require.Nil(t, err)

	log.Info().Msg("hidden")
	log.Warn().Str("shape", "rect").Msg("shown")
	require.Nil(t, closer.Close())

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")

	data, err := os.ReadFile(c.LogFile)
	require.Nil(t, err)
	require.Contains(t, string(data), `"shape":"rect"`)
	require.NotContains(t, string(data), "hidden")
}

func TestInitBadLevel(t *testing.T) {
	c := config.Default()
	c.LogLevel = "loud"
	_, err := initTo(&bytes.Buffer{}, c)
	require.Error(t, err)
}
