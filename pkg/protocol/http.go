package protocol

import (
	echo "github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const httpControllerTag = `group:"http.controller"`

type HttpRouter = *echo.Echo

// HttpResolvable registers a controller's routes on the shared router.
type HttpResolvable interface {
	Resolve(HttpRouter) error
}

// AsHttpController annotates a controller constructor so fx collects it into
// the http.controller group consumed by the http module.
func AsHttpController(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(HttpResolvable)),
		fx.ResultTags(httpControllerTag),
	)
}

// ResolveAll registers every controller, stopping on the first failure.
func ResolveAll(router HttpRouter, controllers []HttpResolvable) error {
	for _, controller := range controllers {
		if err := controller.Resolve(router); err != nil {
			return err
		}
	}
	return nil
}
