package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mercadito/marketplace-api/internal/api/metrics"
	"github.com/mercadito/marketplace-api/internal/core/ports"
)

// DeliveryHandler handles HTTP requests for deliveries. Every route is
// session-gated; the handlers always resolve the acting user first.
type DeliveryHandler struct {
	service ports.DeliveryService
}

func NewDeliveryHandler(service ports.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{service: service}
}

// Create handles POST /delivery.
//
// @Summary      Create a delivery
// @Tags         deliveries
// @Accept       json
// @Produce      json
// @Param        body  body      createDeliveryRequest  true  "Delivery details"
// @Success      201   {object}  domain.Delivery
// @Failure      404   {object}  errorResponse
// @Router       /delivery [post]
func (h *DeliveryHandler) Create(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	delivery, err := h.service.Create(c.Request().Context(), actor, ports.CreateDeliveryInput{
		ProductID: req.Product,
		Quantity:  req.Quantity,
		Date:      req.Date,
		Status:    req.Status,
		Comments:  req.Comments,
		Score:     req.Score,
	})
	if err != nil {
		return err
	}

	metrics.DeliveriesCreatedTotal.WithLabelValues(string(delivery.Status)).Inc()
	return c.JSON(http.StatusCreated, delivery)
}

// Get handles GET /delivery/:id. Only the owner may see a delivery.
//
// @Summary      Get a delivery by id
// @Tags         deliveries
// @Produce      json
// @Param        id   path      string  true  "Delivery id"
// @Success      200  {object}  domain.Delivery
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /delivery/{id} [get]
func (h *DeliveryHandler) Get(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	delivery, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, delivery)
}

// List handles GET /delivery with optional start/end date bounds (inclusive).
//
// @Summary      List the caller's deliveries
// @Tags         deliveries
// @Produce      json
// @Param        start  query     string  false  "Earliest date (RFC 3339 or YYYY-MM-DD)"
// @Param        end    query     string  false  "Latest date (RFC 3339 or YYYY-MM-DD)"
// @Success      200    {array}   domain.Delivery
// @Failure      404    {object}  errorResponse
// @Router       /delivery [get]
func (h *DeliveryHandler) List(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	start, err := parseDate(c.QueryParam("start"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid start date")
	}
	end, err := parseDate(c.QueryParam("end"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid end date")
	}

	deliveries, err := h.service.List(c.Request().Context(), actor, start, end)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deliveries)
}

// Update handles PUT /delivery/:id — comments and score only.
//
// @Summary      Update a delivery's comments and score
// @Tags         deliveries
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Delivery id"
// @Param        body  body      updateDeliveryRequest  true  "Fields to update"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /delivery/{id} [put]
func (h *DeliveryHandler) Update(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err = h.service.Update(c.Request().Context(), actor, c.Param("id"), ports.DeliveryUpdate{
		Comments: req.Comments,
		Score:    req.Score,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Delivery updated successfully"})
}

// parseDate accepts RFC 3339 timestamps or bare YYYY-MM-DD dates. An empty
// value parses to the zero time, meaning "unbounded".
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
