package api

import (
	"go.uber.org/fx"
)

// Module provides the HTTP handler and server.
var Module = fx.Module("api",
	fx.Provide(
		NewHandler,
		NewServer,
	),
)
