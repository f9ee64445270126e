package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"akolite/pkg/apperr"
	dispatchsvc "akolite/pkg/dispatch/service"
	prodsvc "akolite/pkg/production/service"
)

type ProductionCtrl struct {
	svc      prodsvc.Service
	dispatch dispatchsvc.Service
}

func New(svc prodsvc.Service, dispatch dispatchsvc.Service) *ProductionCtrl {
	return &ProductionCtrl{svc: svc, dispatch: dispatch}
}

func fail(c echo.Context, err error) error {
	return c.JSON(apperr.HTTPStatus(err), echo.Map{
		"kind":  string(apperr.KindOf(err)),
		"error": err.Error(),
	})
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return uint(id), err
}

func (h *ProductionCtrl) List(c echo.Context) error {
	items, err := h.svc.List(c.QueryParam("status"), c.QueryParam("resin_type"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

func (h *ProductionCtrl) Create(c echo.Context) error {
	var in prodsvc.CreateSingleInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	u, err := h.svc.CreateSingle(in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *ProductionCtrl) Proceed(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	u, err := h.svc.Proceed(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *ProductionCtrl) Complete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	u, err := h.svc.Complete(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *ProductionCtrl) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.svc.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *ProductionCtrl) Deploy(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		DispatchQuantity float64 `json:"dispatch_quantity"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	res, err := h.dispatch.DispatchSingle(id, body.DispatchQuantity)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
