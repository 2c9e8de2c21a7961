package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	pb2 "moonlight/proto/account"
	pb1 "moonlight/proto/chat"
	pb3 "moonlight/proto/groups"

	"moonlight/auth"
	"moonlight/infrastructure/grpc/server"
	"moonlight/internal"
	"moonlight/repositories"
	"moonlight/runtime"
	"moonlight/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	grpc2 "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting, so every defer (database cleanup included)
// executes before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	// 2. Database (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Shared-state machinery: session registry, per-entity locks, dispatch
	registry := runtime.NewRegistry()
	dispatcher := runtime.NewQueueDispatcher(logger, registry)
	locks := runtime.NewEntityLocks(config.EntityLockTimeout)

	// 4. Repositories & Services
	messageRepository := repositories.NewMessageRepository(db, logger, config.LimitMessages)
	groupRepository := repositories.NewGroupRepository(db)
	userRepository := repositories.NewUserRepository(db)

	contactService := services.NewContactService(logger, dispatcher)
	messageService := services.NewMessageService(logger, messageRepository, userRepository,
		groupRepository, dispatcher, locks)
	groupService := services.NewGroupService(logger, groupRepository, contactService, locks)
	authService := services.NewAuthService(userRepository, config.AuthTokenDuration)

	// 5. Context & Signals
	// NotifyContext captures OS signals and cancels the context to trigger a shutdown.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. gRPC Server Setup
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc2.UnaryLoggingInterceptor(logger),
			auth.UnaryAuthInterceptor,
		),
		grpc.ChainStreamInterceptor(
			auth.StreamAuthInterceptor,
		))
	chatServer := server.NewChatServer(logger, messageService, registry,
		config.ConnectionBufferSize, config.DeliveryTimeout)
	groupsServer := server.NewGroupsServer(groupService)
	authServer := server.NewAuthServer(authService)
	pb1.RegisterChatServiceServer(s, chatServer)
	pb2.RegisterAuthServiceServer(s, authServer)
	pb3.RegisterGroupsServiceServer(s, groupsServer)

	// Use an error channel to capture Serve() issues asynchronously.
	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	// The execution blocks here until either a signal is received or the server crashes.
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 8. Final Cleanup (Graceful Shutdown)
	// Active streams are allowed to finish before the process leaves.
	logger.Info("Shutting down gracefully...")
	s.GracefulStop()
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG).
			WithBypassLockGuard(true)
	} else {
		options = options.WithLoggingLevel(badger.INFO)
	}

	return options
}
