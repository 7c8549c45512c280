package bootstrap

import (
	"resort-engine/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Core is everything except the HTTP layer; resortctl runs on it.
var Core = fx.Options(
	ConfigModule,
	LoggerModule,
	StorageModule,
	JWTModule,
	components.InfraModule,
	components.UseCaseModule,
)

var Module = fx.Options(
	Core,
	components.HandlerModule,
)
