package order

import "go.uber.org/fx"

// Module wires gRPC order handlers.
var Module = fx.Options(
	fx.Provide(NewHandler),
	fx.Invoke(Register),
)
