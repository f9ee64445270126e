package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"akolite/pkg/apperr"
	batchsvc "akolite/pkg/batch/service"
	dispatchsvc "akolite/pkg/dispatch/service"
)

type BatchCtrl struct {
	builder  batchsvc.Service
	dispatch dispatchsvc.Service
}

func New(builder batchsvc.Service, dispatch dispatchsvc.Service) *BatchCtrl {
	return &BatchCtrl{builder: builder, dispatch: dispatch}
}

func fail(c echo.Context, err error) error {
	return c.JSON(apperr.HTTPStatus(err), echo.Map{
		"kind":  string(apperr.KindOf(err)),
		"error": err.Error(),
	})
}

func (h *BatchCtrl) Generate(c echo.Context) error {
	var body struct {
		ResinType     string `json:"resin_type"`
		ScheduledDate string `json:"scheduled_date"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	batches, err := h.builder.Generate(body.ResinType, body.ScheduledDate)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"batches": batches})
}

func (h *BatchCtrl) Dispatch(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	res, err := h.dispatch.DispatchBatch(uint(id))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *BatchCtrl) DispatchAllocation(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		AllocationIndex *int `json:"allocation_index"`
	}
	if err := c.Bind(&body); err != nil || body.AllocationIndex == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "allocation_index is required"})
	}
	res, err := h.dispatch.DispatchAllocation(uint(id), *body.AllocationIndex)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
