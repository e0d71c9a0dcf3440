package grpc

import (
	"go.uber.org/fx"

	ordertransport "github.com/Additional-Code/order-service/internal/transport/grpc/order"
)

// Module aggregates all gRPC transport handlers.
var Module = fx.Options(
	ordertransport.Module,
)
