package main

import (
	"log/slog"

	"github.com/romashorodok/room-directory/internal/directory"
	"github.com/romashorodok/room-directory/internal/notify"
	"github.com/romashorodok/room-directory/internal/recent"
	"github.com/romashorodok/room-directory/internal/room"
	"github.com/romashorodok/room-directory/pkg/protocol"
	"github.com/romashorodok/room-directory/pkg/service"
	"go.uber.org/fx"
)

type LogDirectory_Params struct {
	fx.In

	Directory *directory.Directory
	Logger    *slog.Logger
}

func LogDirectory(params LogDirectory_Params) {
	for i, entry := range params.Directory.Entries() {
		params.Logger.Debug("recommended room",
			slog.Int("position", i),
			slog.String("title", entry.Title),
			slog.Bool("disabled", entry.Disabled),
		)
	}
}

func main() {
	fx.New(
		fx.Provide(
			recent.NewStore,
			notify.NewNotifier,
			room.NewRoomService,

			protocol.AsHttpController(room.NewRoomController),
		),

		fx.Module("directory-log",
			fx.Invoke(LogDirectory),
		),

		service.LoggerModule,
		service.LocaleModule,
		service.DirectoryModule,
		service.HttpModule,
	).Run()
}
