package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())

	assert.True(t, Loaded(Regular))
	assert.True(t, Loaded(Mono))
	assert.NotNil(t, Regular.Get())
	assert.Greater(t, Mono.Get().Metrics().Height.Ceil(), 0)
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	err := LoadFont("broken", []byte("not a font"))
	assert.Error(t, err)
	assert.False(t, Loaded("broken"))
}

func TestMissingFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("nope").Get() })
}
