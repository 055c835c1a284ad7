package room

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	echo "github.com/labstack/echo/v4"
	"github.com/romashorodok/room-directory/internal/navigator"
	"github.com/romashorodok/room-directory/internal/notify"
	"github.com/romashorodok/room-directory/internal/recent"
	"github.com/romashorodok/room-directory/pkg/protocol"
	"github.com/romashorodok/room-directory/pkg/variables"
	"github.com/romashorodok/room-directory/pkg/wsutils"
	"go.uber.org/fx"
)

type roomController struct {
	roomService *RoomService
	notifier    *notify.Notifier
	upgrader    websocket.Upgrader
	logger      *slog.Logger
}

func listOptionFromRequest(ctx echo.Context) ListOption {
	option := ListOption{
		HideURL:  variables.Bool(ctx.QueryParam("hideURL"), false),
		Disabled: variables.Bool(ctx.QueryParam("disabled"), false),
	}
	if lang := ctx.QueryParam("lang"); lang != "" {
		option.Languages = append(option.Languages, lang)
	}
	if accept := ctx.Request().Header.Get("Accept-Language"); accept != "" {
		option.Languages = append(option.Languages, accept)
	}
	return option
}

func httpError(err error) error {
	switch {
	case errors.Is(err, ErrRoomNotExist),
		errors.Is(err, navigator.ErrControlNotExist),
		errors.Is(err, recent.ErrEntryNotExist):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrRoomNotPressable):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	return err
}

func (ctrl *roomController) RoomList(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, ctrl.roomService.List(listOptionFromRequest(ctx)))
}

func (ctrl *roomController) RoomSections(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, ctrl.roomService.Sections(listOptionFromRequest(ctx)))
}

type joinResponse struct {
	Target string `json:"target"`
}

func (ctrl *roomController) RoomJoin(ctx echo.Context) error {
	position, err := strconv.Atoi(ctx.Param("position"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "position must be an integer")
	}

	target, err := ctrl.roomService.Join(position, listOptionFromRequest(ctx))
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, &joinResponse{Target: target})
}

type recentLabels struct {
	Info   string `json:"info"`
	Delete string `json:"delete"`
	Empty  string `json:"empty"`
}

type recentListResponse struct {
	Entries []recent.Entry `json:"entries"`
	Labels  recentLabels   `json:"labels"`
}

func (ctrl *roomController) RecentList(ctx echo.Context) error {
	langs := listOptionFromRequest(ctx).Languages
	return ctx.JSON(http.StatusOK, &recentListResponse{
		Entries: ctrl.roomService.Recent(),
		Labels: recentLabels{
			Info:   ctrl.roomService.Translate("welcomepage.info", langs...),
			Delete: ctrl.roomService.Translate("welcomepage.recentListDelete", langs...),
			Empty:  ctrl.roomService.Translate("welcomepage.recentListEmpty", langs...),
		},
	})
}

func (ctrl *roomController) RecentDelete(ctx echo.Context) error {
	if err := ctrl.roomService.DeleteRecent(ctx.Param("id")); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (ctrl *roomController) RecentDialIn(ctx echo.Context) error {
	if err := ctrl.roomService.RequestDialIn(ctx.Param("id")); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusAccepted)
}

type controlCreateResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

func (ctrl *roomController) ControlCreate(ctx echo.Context) error {
	id, err := ctrl.roomService.CreateControl()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, &controlCreateResponse{
		ID:    id,
		Label: ctrl.roomService.Translate("toolbar.switchRoom", listOptionFromRequest(ctx).Languages...),
	})
}

func (ctrl *roomController) ControlState(ctx echo.Context) error {
	state, err := ctrl.roomService.ControlState(ctx.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, state)
}

type controlActivateRequest struct {
	CurrentRoom string `json:"currentRoom"`
}

func (ctrl *roomController) ControlActivate(ctx echo.Context) error {
	req := new(controlActivateRequest)
	if err := ctx.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "bad request")
	}

	result, err := ctrl.roomService.ActivateControl(ctx.Param("id"), req.CurrentRoom)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, result)
}

func (ctrl *roomController) ControlDelete(ctx echo.Context) error {
	if err := ctrl.roomService.RemoveControl(ctx.Param("id")); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (ctrl *roomController) ControlEvents(ctx echo.Context) error {
	id := ctx.Param("id")
	if _, err := ctrl.roomService.ControlState(id); err != nil {
		return httpError(err)
	}

	// The control lives as long as its events socket.
	err := ctrl.listen(ctx, id)
	if rmErr := ctrl.roomService.RemoveControl(id); rmErr == nil {
		ctrl.logger.Debug("switch-room control destroyed", slog.String("control", id))
	}
	return err
}

func (ctrl *roomController) RoomNotifier(ctx echo.Context) error {
	return ctrl.listen(ctx, notify.Broadcast)
}

// listen holds a websocket subscribed to channel until the client goes away.
func (ctrl *roomController) listen(ctx echo.Context, channel string) error {
	conn, err := ctrl.upgrader.Upgrade(ctx.Response().Writer, ctx.Request(), nil)
	if err != nil {
		ctrl.logger.Error(fmt.Sprintf("Unable upgrade request %+v", ctx.Request()))
		return err
	}

	w := wsutils.NewThreadSafeWriter(conn)
	defer w.Close()

	id := uuid.NewString()
	ctrl.notifier.Listen(channel, id, w)
	defer ctrl.notifier.Stop(channel, id)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			ctrl.logger.Debug("listener gone", slog.String("channel", channel), slog.String("err", err.Error()))
			return nil
		}
	}
}

func (ctrl *roomController) Resolve(router *echo.Echo) error {
	rooms := router.Group("/rooms")
	rooms.GET("/recommended", ctrl.RoomList)
	rooms.GET("/recommended/sections", ctrl.RoomSections)
	rooms.POST("/recommended/:position/join", ctrl.RoomJoin)
	rooms.GET("/recent", ctrl.RecentList)
	rooms.DELETE("/recent/:id", ctrl.RecentDelete)
	rooms.POST("/recent/:id/dial-in", ctrl.RecentDialIn)
	rooms.GET("/notifier", ctrl.RoomNotifier)

	controls := router.Group("/switch-controls")
	controls.POST("", ctrl.ControlCreate)
	controls.GET("/:id", ctrl.ControlState)
	controls.POST("/:id/activate", ctrl.ControlActivate)
	controls.DELETE("/:id", ctrl.ControlDelete)
	controls.GET("/:id/events", ctrl.ControlEvents)
	return nil
}

var _ protocol.HttpResolvable = (*roomController)(nil)

type newRoomController_Params struct {
	fx.In

	RoomService *RoomService
	Notifier    *notify.Notifier
	Logger      *slog.Logger
}

func NewRoomController(params newRoomController_Params) *roomController {
	return &roomController{
		roomService: params.RoomService,
		notifier:    params.Notifier,
		logger:      params.Logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}
