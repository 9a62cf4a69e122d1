package systems

import (
	"errors"
	"testing"

	"github.com/quasilyte/gdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitPersistenceFailureKeepsDefaults(t *testing.T) {
	diskErr := errors.New("read-only home")
	openStore = func(gdata.Config) (*gdata.Manager, error) { return nil, diskErr }
	defer func() { openStore = gdata.Open }()

	err := InitPersistence("gooey-cursor-test")
	require.Error(t, err)
	assert.ErrorIs(t, err, diskErr)
	assert.Contains(t, err.Error(), "gooey-cursor-test")

	saved, err := LoadSettings()
	assert.NoError(t, err)
	assert.Nil(t, saved)
	assert.NoError(t, SaveSettings(&SavedSettings{Theme: "ember"}))

	e := newTestECS()
	s := GetOrCreateSettings(e)
	assert.True(t, s.Enabled, "defaults apply without a store")
}
