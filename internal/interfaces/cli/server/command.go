// Package server implements the `serve` command: full dependency wiring and
// the graceful HTTP server lifecycle.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	adminusecases "curator/internal/application/admin/usecases"
	authusecases "curator/internal/application/auth/usecases"
	knowledgeusecases "curator/internal/application/knowledge/usecases"
	"curator/internal/domain/user"
	"curator/internal/infrastructure/auth"
	"curator/internal/infrastructure/config"
	"curator/internal/infrastructure/database"
	"curator/internal/infrastructure/repository"
	"curator/internal/infrastructure/storage"
	httpiface "curator/internal/interfaces/http"
	"curator/internal/interfaces/http/handlers"
	"curator/internal/interfaces/http/middleware"
	"curator/internal/shared/logger"
)

func NewCommand() *cobra.Command {
	var env string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(env)
		},
	}

	cmd.Flags().StringVar(&env, "env", "default", "environment (default, release, debug)")
	return cmd
}

func run(env string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	log := logger.NewLogger().Named("server")

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to init database: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Errorw("failed to close database", "error", err)
		}
	}()
	db := database.Get()

	store, err := storage.NewFileStore(cfg.Storage.UploadDir, cfg.Storage.StagingDir, cfg.Storage.MaxUploadMB)
	if err != nil {
		return fmt.Errorf("failed to init file store: %w", err)
	}

	// Repositories
	users := repository.NewUserRepository(db)
	sessions := repository.NewSessionRepository(db)
	requests := repository.NewKnowledgeRequestRepository(db)
	adminRequests := repository.NewAdminRequestRepository(db)
	reports := repository.NewReportRepository(db)

	// Auth primitives
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	tokens := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.ExpMinutes, cfg.Auth.JWT.Issuer)

	// Usecases
	login := authusecases.NewLoginWithPasswordUseCase(users, sessions, hasher, tokens)
	logout := authusecases.NewLogoutUseCase(sessions)
	authenticate := authusecases.NewAuthenticateUseCase(sessions, tokens)

	createAdmin := adminusecases.NewCreateAdminUseCase(users, hasher, cfg.Auth.AdminEmailDomain)
	listSessions := adminusecases.NewListActiveSessionsUseCase(sessions)
	pendingAdmins := adminusecases.NewListPendingAdminRequestsUseCase(adminRequests)
	reportsUC := adminusecases.NewReportsUseCase(reports)

	submit := knowledgeusecases.NewSubmitRequestUseCase(requests, store)
	listOwn := knowledgeusecases.NewListOwnRequestsUseCase(requests)
	listPending := knowledgeusecases.NewListPendingRequestsUseCase(requests)
	decide := knowledgeusecases.NewDecideRequestUseCase(requests)
	getAttachment := knowledgeusecases.NewGetAttachmentUseCase(requests, store)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit.LoginLimit, cfg.RateLimit.WindowSeconds)
	}

	router := httpiface.NewRouter(httpiface.RouterConfig{
		Mode:             cfg.Server.Mode,
		AuthHandler:      handlers.NewAuthHandler(login, logout, users, cfg.Auth.Cookie),
		AdminHandler:     handlers.NewAdminHandler(createAdmin, listSessions, pendingAdmins),
		KnowledgeHandler: handlers.NewKnowledgeHandler(submit, listOwn, listPending, decide, getAttachment),
		ReportHandler:    handlers.NewReportHandler(reportsUC),
		AuthMiddleware:   middleware.NewAuthMiddleware(authenticate, cfg.Auth.Cookie),
		RateLimiter:      rateLimiter,
	})

	srv := &http.Server{
		Addr:              cfg.Server.GetAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Periodic sweep of expired session rows. Expired rows are already
	// invisible to authentication; this keeps the table small.
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go sweepExpiredSessions(sweepCtx, sessions, log)

	errCh := make(chan error, 1)
	go func() {
		log.Infow("http server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case sig := <-quit:
		log.Infow("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	log.Infow("server stopped")
	return nil
}

func sweepExpiredSessions(ctx context.Context, sessions user.SessionRepository, log logger.Interface) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := sessions.DeleteExpired(ctx); err != nil {
				log.Warnw("expired session sweep failed", "error", err)
			}
		}
	}
}
