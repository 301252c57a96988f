// Package createsuperadmin implements the bootstrap command that seeds the
// first superadmin account. Everything after this happens over the API.
package createsuperadmin

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	adminusecases "curator/internal/application/admin/usecases"
	"curator/internal/infrastructure/auth"
	"curator/internal/infrastructure/config"
	"curator/internal/infrastructure/database"
	"curator/internal/infrastructure/repository"
	"curator/internal/shared/authorization"
	"curator/internal/shared/logger"
)

func NewCommand() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "create-superadmin",
		Short: "Create the initial superadmin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(email, password)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "superadmin email (required)")
	cmd.Flags().StringVar(&password, "password", "", "superadmin password (required)")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func run(email, password string) error {
	cfg, err := config.Load("default")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to init database: %w", err)
	}
	defer database.Close()

	users := repository.NewUserRepository(database.Get())
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	uc := adminusecases.NewCreateAdminUseCase(users, hasher, cfg.Auth.AdminEmailDomain)
	summary, err := uc.Execute(context.Background(), adminusecases.CreateAdminInput{
		Email:    email,
		Password: password,
		Role:     authorization.RoleSuperadmin.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to create superadmin: %w", err)
	}

	fmt.Printf("superadmin created: id=%d email=%s\n", summary.ID, summary.Email)
	return nil
}
