package bootstrap

import (
	"payref-console/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	StorageModule,
	components.InfraModule,
	components.UseCaseModule,
	components.HandlerModule,
)
