package theme

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultThemes(t *testing.T) {
	f := Default()
	assert.Equal(t, "violet", f.Active)
	require.Len(t, f.Themes, 4)

	th, err := f.Lookup("violet")
	require.NoError(t, err)
	rgb, err := th.RGB()
	require.NoError(t, err)
	assert.InDelta(t, 0x7c/255.0, rgb[0], 1e-9)
	assert.InDelta(t, 0x5c/255.0, rgb[1], 1e-9)
	assert.InDelta(t, 1.0, rgb[2], 1e-9)
}

func TestParse(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr error
		active  string
	}{
		{
			name:   "first_theme_is_default",
			yaml:   "themes:\n  - name: a\n    color: \"#fff\"\n  - name: b\n    color: \"000000\"\n",
			active: "a",
		},
		{
			name:   "explicit_active",
			yaml:   "active: b\nthemes:\n  - name: a\n    color: \"#fff\"\n  - name: b\n    color: \"#000000\"\n",
			active: "b",
		},
		{
			name:    "unknown_active",
			yaml:    "active: c\nthemes:\n  - name: a\n    color: \"#fff\"\n",
			wantErr: ErrUnknownTheme,
		},
		{
			name:    "bad_colour",
			yaml:    "themes:\n  - name: a\n    color: \"#12345\"\n",
			wantErr: ErrInvalidColor,
		},
		{
			name:    "empty",
			yaml:    "themes: []\n",
			wantErr: ErrEmpty,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := Parse([]byte(c.yaml))
			if c.wantErr != nil {
				assert.ErrorIs(t, err, c.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.active, f.Active)
		})
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("themes: [\n"))
	assert.Error(t, err)
}

func TestNextWraps(t *testing.T) {
	f := Default()
	assert.Equal(t, "ember", f.Next("violet").Name)
	assert.Equal(t, "violet", f.Next("ice").Name)
	assert.Equal(t, "violet", f.Next("missing").Name)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("themes:\n  - name: only\n    color: \"#102030\"\n"), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "only", f.Active)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("themes: []\n"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	// unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("themes:\n  - name: a\n    color: \"#abc\"\n"), 0o644))
	}

	select {
	case got := <-w.Events:
		assert.Equal(t, w.Path(), got)
	case <-time.After(3 * time.Second):
		t.Fatal("no event for theme file write")
	}

	select {
	case got := <-w.Events:
		t.Fatalf("burst reported twice: %s", got)
	case <-time.After(300 * time.Millisecond):
	}

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}
