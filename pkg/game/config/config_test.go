package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, RendererTUI, cfg.Renderer)
	assert.Equal(t, "locales", cfg.LocaleDir)
	assert.Equal(t, "en_GB", cfg.Language)
	assert.Equal(t, "k", cfg.KickKey)
	assert.Zero(t, cfg.Seed)
	assert.Empty(t, cfg.Disqualify)

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("KICKDOOR_RENDERER", "ebiten")
	t.Setenv("KICKDOOR_SEED", "42")
	t.Setenv("KICKDOOR_KICK_KEY", "f")
	t.Setenv("KICKDOOR_LOG_LEVEL", "debug")
	t.Setenv("KICKDOOR_DISQUALIFY", `Archetype == "garage";Sprite contains "vault"`)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, RendererEbiten, cfg.Renderer)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "f", cfg.KickKey)
	assert.Equal(t, []string{`Archetype == "garage"`, `Sprite contains "vault"`}, cfg.Disqualify)

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"KICKDOOR_RENDERER":  "sdl",
		"KICKDOOR_SEED":      "not-a-number",
		"KICKDOOR_LOG_LEVEL": "loud",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
