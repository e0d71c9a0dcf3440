package order

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Additional-Code/order-service/internal/dto"
	"github.com/Additional-Code/order-service/internal/entity"
	"github.com/Additional-Code/order-service/internal/presentation/http/response"
	service "github.com/Additional-Code/order-service/internal/service/order"
	"github.com/Additional-Code/order-service/pkg/errorbank"
)

var httpTracer = otel.Tracer("github.com/Additional-Code/order-service/transport/http/order")

// Handler exposes order endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs an order Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with provided Echo group.
func Register(e *echo.Echo, h *Handler) {
	g := e.Group("/orders")
	g.GET("", h.list)
	g.POST("", h.place)
	g.DELETE("/:id", h.delete)
}

func (h *Handler) list(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.list")
	defer span.End()

	orders, err := h.svc.List(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}

	out := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toDTO(order))
	}
	return b.WithData(out).WithMeta("count", len(out)).Build()
}

func (h *Handler) place(c echo.Context) error {
	b := response.New(c)

	var payload dto.PlaceOrderRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}

	items := make([]entity.OrderLineItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, entity.OrderLineItem{
			SKUCode:  item.SKUCode,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.place", trace.WithAttributes(attribute.Int("order.items", len(items))))
	defer span.End()

	number, err := h.svc.Place(ctx, items)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithStatus(http.StatusCreated).WithData(dto.PlaceOrderResponse{OrderNumber: number}).Build()
}

func (h *Handler) delete(c echo.Context) error {
	b := response.New(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return b.WithError(errorbank.BadRequest("invalid id", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.delete", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	deleted, err := h.svc.Delete(ctx, id)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithData(dto.DeleteOrderResponse{IsDeleted: deleted}).Build()
}

func toDTO(order entity.Order) dto.OrderResponse {
	out := dto.OrderResponse{
		OrderNumber: order.OrderNumber,
		CreatedAt:   order.CreatedAt,
		Items:       make([]dto.OrderLineItemResponse, 0, len(order.Items)),
	}
	if order.ID != nil {
		out.ID = *order.ID
	}
	for _, item := range order.Items {
		line := dto.OrderLineItemResponse{
			SKUCode:  item.SKUCode,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
		if item.ID != nil {
			line.ID = *item.ID
		}
		out.Items = append(out.Items, line)
	}
	return out
}
