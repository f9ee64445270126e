package controllerImp

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"akolite/entities"
	"akolite/pkg/order/repository"
)

type OrderCtrl struct{ repo repository.OrderRepository }

func New(repo repository.OrderRepository) *OrderCtrl { return &OrderCtrl{repo} }

type createReq struct {
	OrderNumber   string  `json:"order_number"`
	ClientName    string  `json:"client_name"`
	ResinType     string  `json:"resin_type"`
	Quantity      float64 `json:"quantity"`
	Unit          string  `json:"unit"`
	ScheduledDate string  `json:"scheduled_date"`
}

func (h *OrderCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if strings.TrimSpace(req.ClientName) == "" || strings.TrimSpace(req.ResinType) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "client_name and resin_type are required"})
	}
	if req.Quantity <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "quantity must be positive"})
	}
	if _, err := time.Parse("2006-01-02", req.ScheduledDate); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "scheduled_date must be YYYY-MM-DD"})
	}
	if req.Unit == "" {
		req.Unit = "L"
	}
	o := &entities.Order{
		OrderNumber:   req.OrderNumber,
		ClientName:    req.ClientName,
		ResinType:     req.ResinType,
		Quantity:      req.Quantity,
		Unit:          req.Unit,
		ScheduledDate: req.ScheduledDate,
		Status:        entities.OrderPending,
	}
	if err := h.repo.Create(o); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if o.OrderNumber == "" {
		o.OrderNumber = fmt.Sprintf("ORD-%04d", o.OrderID)
		if err := h.repo.Save(o); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *OrderCtrl) List(c echo.Context) error {
	out, err := h.repo.List(c.QueryParam("status"), c.QueryParam("resin_type"), c.QueryParam("date"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}
