package system

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/niramoy/niramoy_backend/config"
	"github.com/niramoy/niramoy_backend/pkg/authorize"
	"github.com/niramoy/niramoy_backend/pkg/database"
)

// NewSeedPoliciesCommand re-seeds the default role policies. Seeding is
// idempotent, so it is safe to run after a policy table wipe or an upgrade
// that adds resources.
func NewSeedPoliciesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed-policies",
		Short: "Seed the default Casbin role policies",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			casbinDSN := database.NewDSN(cfg.CasbinDatabase)
			enforcer, cleanup, err := authorize.NewEnforcer(cfg.Authorization.CasbinModelPath, casbinDSN)
			if err != nil {
				return fmt.Errorf("failed to create enforcer: %w", err)
			}
			defer cleanup(context.Background())

			auth, err := authorize.NewAuthorization(enforcer)
			if err != nil {
				return fmt.Errorf("failed to create authorization: %w", err)
			}

			if err := authorize.SeedDefaultPolicies(context.Background(), auth); err != nil {
				return fmt.Errorf("failed to seed policies: %w", err)
			}

			fmt.Println("Default policies seeded.")
			return nil
		},
	}

	return cmd
}
