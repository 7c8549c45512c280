package bootstrap

import (
	"time"

	"resort-engine/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewPolicyLocation,
	),
)

// NewPolicyLocation is the zone in which calendar dates (bookings, rate
// overrides, weekdays) are interpreted.
func NewPolicyLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Policy.Location()
}
