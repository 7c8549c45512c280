package main

import (
	"context"
	"encoding/json"
	"os"

	"resort-engine/cmd/bootstrap"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var outputJSON bool

var rootCmd = &cobra.Command{
	Use:          "resortctl",
	Short:        "Operator tooling for the resort engine",
	SilenceUsage: true,
}

func main() {
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output JSON")

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(purgeCodesCmd())
	rootCmd.AddCommand(quoteCmd())
	rootCmd.AddCommand(tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// withEngine starts the engine without its HTTP layer, populates targets and
// runs fn. Lifecycle hooks (pool, dispatcher) are stopped afterwards.
func withEngine(ctx context.Context, fn func() error, targets ...any) error {
	app := fx.New(
		bootstrap.Core,
		fx.NopLogger,
		fx.Populate(targets...),
	)
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() { _ = app.Stop(context.Background()) }()
	return fn()
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
