package router

import (
	"github.com/labstack/echo/v4"

	"akolite/pkg/middleware"
)

func New(
	e *echo.Echo,
	orderCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
	},
	batchCtrl interface {
		Generate(echo.Context) error
		Dispatch(echo.Context) error
		DispatchAllocation(echo.Context) error
	},
	capacityCtrl interface {
		List(echo.Context) error
		Put(echo.Context) error
	},
	prodCtrl interface {
		List(echo.Context) error
		Create(echo.Context) error
		Proceed(echo.Context) error
		Complete(echo.Context) error
		Delete(echo.Context) error
		Deploy(echo.Context) error
	},
	dispatchCtrl interface{ Records(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
	adminToken string,
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	e.POST("/orders", orderCtrl.Create)
	e.GET("/orders", orderCtrl.List)

	e.POST("/batches/generate", batchCtrl.Generate)
	e.POST("/batches/:id/dispatch", batchCtrl.Dispatch)
	e.POST("/batches/:id/dispatch-allocation", batchCtrl.DispatchAllocation)

	e.GET("/batch-settings", capacityCtrl.List)
	e.PUT("/batch-settings/:resinType", capacityCtrl.Put)

	e.GET("/produced-resins", prodCtrl.List)
	e.POST("/produced-resins", prodCtrl.Create)
	e.POST("/produced-resins/:id/proceed", prodCtrl.Proceed)
	e.POST("/produced-resins/:id/complete", prodCtrl.Complete)
	e.POST("/produced-resins/:id/deploy", prodCtrl.Deploy)
	e.DELETE("/produced-resins/:id", prodCtrl.Delete, middleware.AdminToken(adminToken))

	e.GET("/dispatch-records", dispatchCtrl.Records)
	return e
}
