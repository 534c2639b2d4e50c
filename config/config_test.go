package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dhamidi/barrage/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "barrage.yaml")
	err := os.WriteFile(path, []byte(`
every: 250ms
jitter: 0.25
count: 3
data:
  name: barrage
  tags: [a, b]
log:
  verbosity: 2
  file: /tmp/barrage.log
`), 0o644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	d, err := cfg.Interval()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, d)
	require.NotNil(t, cfg.Jitter)
	assert.Equal(t, 0.25, *cfg.Jitter)
	assert.Equal(t, 3, cfg.Count)
	assert.Equal(t, 2, cfg.Log.Verbosity)
	assert.Equal(t, "/tmp/barrage.log", cfg.Log.File)

	data, ok := cfg.Data.(map[string]any)
	require.True(t, ok, "data decoded as %T", cfg.Data)
	assert.Equal(t, "barrage", data["name"])
}

func TestDecode_JSON(t *testing.T) {
	cfg, err := Decode([]byte(`{"every": "2s", "data": {"ok": true}}`))
	require.NoError(t, err)

	d, err := cfg.Interval()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, d)
	assert.Nil(t, cfg.Jitter)
}

func TestDecode_Empty(t *testing.T) {
	cfg, err := Decode([]byte(`{}`))
	require.NoError(t, err)

	d, err := cfg.Interval()
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode([]byte(`every: 1.5s`))
	assert.ErrorIs(t, err, parse.ErrNoAlternativeMatched)

	_, err = Decode([]byte(`jitter: -1`))
	assert.Error(t, err)

	_, err = Decode([]byte(`count: -1`))
	assert.Error(t, err)

	_, err = Decode([]byte(`intervl: 2s`))
	assert.Error(t, err, "unknown fields must be rejected")
}

func TestValidateJitter(t *testing.T) {
	for _, j := range []float64{0, 0.5, 2} {
		assert.NoError(t, ValidateJitter(j), "ValidateJitter(%v)", j)
	}
	for _, j := range []float64{-0.1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.Error(t, ValidateJitter(j), "ValidateJitter(%v)", j)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
