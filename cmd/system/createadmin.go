package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/nyaruka/phonenumbers"
	"github.com/spf13/cobra"

	"github.com/niramoy/niramoy_backend/config"
	entstaff "github.com/niramoy/niramoy_backend/internal/repo/staff"
	"github.com/niramoy/niramoy_backend/pkg/authorize"
	"github.com/niramoy/niramoy_backend/pkg/database"
	"github.com/niramoy/niramoy_backend/pkg/util/password"
)

// NewCreateAdminCommand bootstraps the first admin account. It creates an
// ACTIVE staff row with the admin role, grants the superadmin grouping in
// Casbin, and prints a one-time password that must be changed on first login.
func NewCreateAdminCommand() *cobra.Command {
	var (
		firstName string
		lastName  string
		phone     string
	)

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create the initial admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			parsed, err := phonenumbers.Parse(phone, cfg.Hospital.DefaultRegion)
			if err != nil || !phonenumbers.IsValidNumber(parsed) {
				return fmt.Errorf("invalid phone number %q", phone)
			}
			normalized := phonenumbers.Format(parsed, phonenumbers.E164)

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			exists, err := client.Staff.Query().
				Where(entstaff.Phone(normalized), entstaff.DeletedAtIsNil()).
				Exist(ctx)
			if err != nil {
				return fmt.Errorf("check existing staff: %w", err)
			}
			if exists {
				return fmt.Errorf("a staff account with phone %s already exists", normalized)
			}

			tempPassword := password.Generate(12)
			hash, err := password.Hash(tempPassword)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}

			st, err := client.Staff.Create().
				SetFirstName(firstName).
				SetLastName(lastName).
				SetPhone(normalized).
				SetPasswordHash(hash).
				SetRole(entstaff.RoleAdmin).
				SetMustChangePassword(true).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("create admin staff: %w", err)
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

			if err := authorize.AssignStaffRole(ctx, auth, st.ID.String(), string(st.Role)); err != nil {
				return fmt.Errorf("assign admin role: %w", err)
			}
			if err := authorize.AssignSuperAdmin(ctx, auth, st.ID.String()); err != nil {
				return fmt.Errorf("assign superadmin: %w", err)
			}

			fmt.Printf("Admin account created.\n  ID:       %s\n  Phone:    %s\n  Password: %s\n", st.ID, normalized, tempPassword)
			fmt.Println("The password must be changed on first login.")
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "Admin first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "Admin last name")
	cmd.Flags().StringVar(&phone, "phone", "", "Admin phone number")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")
	_ = cmd.MarkFlagRequired("phone")

	return cmd
}
