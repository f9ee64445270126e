package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"akolite/pkg/apperr"
	"akolite/pkg/capacity/repository"
)

type CapacityCtrl struct{ repo repository.CapacityRepository }

func New(repo repository.CapacityRepository) *CapacityCtrl { return &CapacityCtrl{repo} }

func (h *CapacityCtrl) List(c echo.Context) error {
	out, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CapacityCtrl) Put(c echo.Context) error {
	resin := c.Param("resinType")
	var body struct {
		Capacity float64 `json:"capacity"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if body.Capacity <= 0 {
		err := apperr.New(apperr.InvalidConfiguration, "capacity must be positive")
		return c.JSON(apperr.HTTPStatus(err), echo.Map{"kind": string(apperr.KindOf(err)), "error": err.Error()})
	}
	if err := h.repo.Upsert(resin, body.Capacity); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"resin_type": resin, "capacity": body.Capacity})
}
