package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/opsacademy/training-backend/internal/adapter/postgres"
	"github.com/opsacademy/training-backend/internal/adapter/postgres/assignmentlog"
	"github.com/opsacademy/training-backend/internal/adapter/postgres/contentlog"
	progressrepo "github.com/opsacademy/training-backend/internal/adapter/postgres/progress"
	topicrepo "github.com/opsacademy/training-backend/internal/adapter/postgres/topic"
	userrepo "github.com/opsacademy/training-backend/internal/adapter/postgres/user"
	"github.com/opsacademy/training-backend/internal/auth"
	"github.com/opsacademy/training-backend/internal/config"
	assignmentsvc "github.com/opsacademy/training-backend/internal/service/assignment"
	authsvc "github.com/opsacademy/training-backend/internal/service/auth"
	impexsvc "github.com/opsacademy/training-backend/internal/service/impex"
	progresssvc "github.com/opsacademy/training-backend/internal/service/progress"
	topicsvc "github.com/opsacademy/training-backend/internal/service/topic"
	usersvc "github.com/opsacademy/training-backend/internal/service/user"
	"github.com/opsacademy/training-backend/internal/transport/middleware"
	"github.com/opsacademy/training-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services, and HTTP handlers, then
// serves until the context is cancelled and shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	topics := topicrepo.New(pool)
	users := userrepo.New(pool)
	assignmentLogs := assignmentlog.New(pool)
	contentLogs := contentlog.New(pool)
	progressRepo := progressrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	topicService := topicsvc.NewService(logger, topics, users, contentLogs, tx)
	assignmentService := assignmentsvc.NewService(logger, topics, users, assignmentLogs, tx)
	impexService := impexsvc.NewService(logger, cfg.Training, topics, users, contentLogs)
	authService := authsvc.NewService(logger, users, jwtManager, cfg.Auth)
	userService := usersvc.NewService(logger, users, tx, cfg.Auth)
	progressService := progresssvc.NewService(logger, progressRepo, topics, users)

	router := rest.NewRouter(rest.Handlers{
		Auth:        rest.NewAuthHandler(authService, logger),
		Topics:      rest.NewTopicHandler(topicService, logger),
		Assignments: rest.NewAssignmentHandler(assignmentService, logger),
		Users:       rest.NewUserHandler(userService, logger),
		Progress:    rest.NewProgressHandler(progressService, logger),
		Impex:       rest.NewImpexHandler(impexService, logger),
		Health:      rest.NewHealthHandler(pool, BuildVersion()),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
		middleware.Logger(logger),
	)(router)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErrCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		serveErrCh <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErrCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen and serve: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		shutdownErr := server.Shutdown(shutdownCtx)
		serveErr := <-serveErrCh
		if shutdownErr != nil && !errors.Is(shutdownErr, context.Canceled) {
			return fmt.Errorf("shutdown server: %w", shutdownErr)
		}
		if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			return fmt.Errorf("serve after shutdown: %w", serveErr)
		}
		return nil
	}
}
