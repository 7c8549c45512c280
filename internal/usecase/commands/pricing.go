package commands

import (
	"context"

	"resort-engine/internal/domain/pricing"
	"resort-engine/internal/domain/resource"
	"resort-engine/internal/domain/shared/interval"
	"resort-engine/internal/domain/shared/money"
	"resort-engine/internal/usecase/shared"
)

// resolvePrice prices span on res from the rules visible in tx.
func resolvePrice(ctx context.Context, tx shared.Tx, resolver *pricing.Resolver, res *resource.Resource, span interval.Interval, occupancy int) (money.Money, error) {
	var rules pricing.Rules
	if res.Kind().Scheme() == resource.SchemeDaily {
		weekly, err := tx.Pricing().WeeklyRates(ctx, res.ID())
		if err != nil {
			return money.Zero(), err
		}
		rules.Weekly = weekly
	}
	if res.Kind().Scheme() != resource.SchemeExternal {
		overrides, err := tx.Pricing().Overrides(ctx, res.ID())
		if err != nil {
			return money.Zero(), err
		}
		rules.Overrides = overrides
	}
	return resolver.Resolve(res, span, occupancy, rules)
}
