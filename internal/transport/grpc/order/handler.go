package order

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/Additional-Code/order-service/internal/entity"
	service "github.com/Additional-Code/order-service/internal/service/order"
	"github.com/Additional-Code/order-service/pkg/errorbank"
	"github.com/Additional-Code/order-service/pkg/orderpb"
)

// Handler exposes the order service over gRPC.
type Handler struct {
	orderpb.UnimplementedOrderServer

	svc *service.Service
}

// NewHandler constructs an order Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register attaches the handler to the gRPC server.
func Register(server *grpc.Server, h *Handler) {
	orderpb.RegisterOrderServer(server, h)
}

func (h *Handler) Place(ctx context.Context, req *orderpb.OrderRequest) (*orderpb.OrderResponse, error) {
	number, err := h.svc.Place(ctx, toLineItems(req.GetItems()))
	if err != nil {
		return nil, toStatus(err)
	}
	return &orderpb.OrderResponse{OrderNumber: number}, nil
}

func (h *Handler) GetOrderList(ctx context.Context, _ *orderpb.Empty) (*orderpb.OrderListResponse, error) {
	orders, err := h.svc.List(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &orderpb.OrderListResponse{Orders: make([]*orderpb.OrderEntity, 0, len(orders))}
	for _, order := range orders {
		resp.Orders = append(resp.Orders, toOrderEntity(order))
	}
	return resp, nil
}

func (h *Handler) DeleteOrder(ctx context.Context, req *orderpb.DeleteOrderRequest) (*orderpb.DeleteOrderResponse, error) {
	deleted, err := h.svc.Delete(ctx, req.GetOrderId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &orderpb.DeleteOrderResponse{IsDeleted: deleted}, nil
}

// toStatus keeps causes out of the status message.
func toStatus(err error) error {
	return errorbank.From(err).GRPCStatus().Err()
}

func toLineItems(items []*orderpb.OrderLineItem) []entity.OrderLineItem {
	out := make([]entity.OrderLineItem, 0, len(items))
	for _, item := range items {
		out = append(out, entity.OrderLineItem{
			SKUCode:  item.GetSkuCode(),
			Price:    item.GetPrice(),
			Quantity: item.GetQuantity(),
		})
	}
	return out
}

func toOrderEntity(order entity.Order) *orderpb.OrderEntity {
	out := &orderpb.OrderEntity{
		OrderId:     valueOrZero(order.ID),
		OrderNumber: order.OrderNumber,
		Items:       make([]*orderpb.OrderEntityLineItem, 0, len(order.Items)),
	}
	if order.CreatedAt != nil {
		out.CreatedAt = timestamppb.New(order.CreatedAt.UTC())
	}
	for _, item := range order.Items {
		out.Items = append(out.Items, &orderpb.OrderEntityLineItem{
			OrderLineItemId: valueOrZero(item.ID),
			SkuCode:         item.SKUCode,
			Price:           item.Price,
			Quantity:        item.Quantity,
		})
	}
	return out
}

func valueOrZero(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}
