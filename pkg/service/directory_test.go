package service

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/romashorodok/room-directory/internal/directory"
	"github.com/romashorodok/room-directory/pkg/variables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomDirectory(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	path := filepath.Join(t.TempDir(), "rooms.yaml")
	require.NoError(t, os.WriteFile(path, []byte("recommendedRooms:\n  - {title: Only, url: x}\n"), 0o644))

	t.Setenv(variables.ROOMS_CONFIG_PATH_NAME, path)
	dir, err := roomDirectory(logger)
	require.NoError(t, err)
	assert.Equal(t, 1, dir.Len())

	t.Setenv(variables.ROOMS_CONFIG_PATH_NAME, filepath.Join(t.TempDir(), "absent.yaml"))
	_, err = roomDirectory(logger)
	assert.ErrorIs(t, err, directory.ErrConfiguration)
}

func TestNavigateOrigin(t *testing.T) {
	t.Setenv(variables.NAVIGATE_ORIGIN_NAME, "")
	assert.Equal(t, variables.NAVIGATE_ORIGIN_DEFAULT, navigateOrigin().Origin)

	t.Setenv(variables.NAVIGATE_ORIGIN_NAME, "//rooms.example.net")
	assert.Equal(t, "//rooms.example.net", navigateOrigin().Origin)
}

func TestLocaleBundle(t *testing.T) {
	t.Setenv(variables.DEFAULT_LANGUAGE_NAME, "fr")
	bundle, err := localeBundle()
	require.NoError(t, err)
	assert.Equal(t, "Changer de salle", bundle.Translator()("toolbar.switchRoom"))
}
