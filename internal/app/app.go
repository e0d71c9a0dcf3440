package app

import (
	"go.uber.org/fx"

	"github.com/Additional-Code/order-service/internal/cache"
	"github.com/Additional-Code/order-service/internal/config"
	"github.com/Additional-Code/order-service/internal/database"
	"github.com/Additional-Code/order-service/internal/logger"
	"github.com/Additional-Code/order-service/internal/observability"
	repositoryorder "github.com/Additional-Code/order-service/internal/repository/order"
	grpcserver "github.com/Additional-Code/order-service/internal/server/grpc"
	httpserver "github.com/Additional-Code/order-service/internal/server/http"
	serviceorder "github.com/Additional-Code/order-service/internal/service/order"
	transportgrpc "github.com/Additional-Code/order-service/internal/transport/grpc"
	transporthttp "github.com/Additional-Code/order-service/internal/transport/http"
)

// Core provides the foundational modules shared across executables.
var Core = fx.Options(
	config.Module,
	logger.Module,
	observability.Module,
	database.Module,
	cache.Module,
	repositoryorder.Module,
	serviceorder.Module,
)

// GRPC wires the order gRPC facade on top of the core modules.
var GRPC = fx.Options(
	grpcserver.Module,
	transportgrpc.Module,
)

// HTTP wires the ops endpoints and the JSON facade.
var HTTP = fx.Options(
	fx.Provide(func(conns *database.Connections) httpserver.Pinger { return conns }),
	httpserver.Module,
	transporthttp.Module,
)

// Module is the default application wiring: gRPC plus the HTTP side server.
var Module = fx.Options(
	Core,
	GRPC,
	HTTP,
)
