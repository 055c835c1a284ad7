package service

import (
	"log/slog"

	"github.com/romashorodok/room-directory/internal/directory"
	"github.com/romashorodok/room-directory/internal/locale"
	"github.com/romashorodok/room-directory/pkg/variables"
	"go.uber.org/fx"
)

type navigateOrigin_Result struct {
	fx.Out

	Origin string `name:"navigate.origin"`
}

func navigateOrigin() navigateOrigin_Result {
	return navigateOrigin_Result{
		Origin: variables.Env(variables.NAVIGATE_ORIGIN_NAME, variables.NAVIGATE_ORIGIN_DEFAULT),
	}
}

// roomDirectory fails the whole app on a bad config, before any list is
// rendered or any control activated.
func roomDirectory(logger *slog.Logger) (*directory.Directory, error) {
	path := variables.Env(variables.ROOMS_CONFIG_PATH_NAME, variables.ROOMS_CONFIG_PATH_DEFAULT)
	dir, err := directory.LoadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Info("room directory loaded", slog.String("path", path), slog.Int("rooms", dir.Len()))
	return dir, nil
}

func localeBundle() (*locale.Bundle, error) {
	return locale.NewBundle(variables.Env(variables.DEFAULT_LANGUAGE_NAME, variables.DEFAULT_LANGUAGE_DEFAULT))
}

var DirectoryModule = fx.Module("directory", fx.Provide(
	roomDirectory,
	navigateOrigin,
))

var LocaleModule = fx.Module("locale", fx.Provide(
	localeBundle,
))
