package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dispatchsvc "akolite/pkg/dispatch/service"
)

type DispatchCtrl struct{ svc dispatchsvc.Service }

func New(svc dispatchsvc.Service) *DispatchCtrl { return &DispatchCtrl{svc: svc} }

// Records serves the dispatch register billing reads from.
func (h *DispatchCtrl) Records(c echo.Context) error {
	out, err := h.svc.Records(c.QueryParam("resin_type"), c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}
