package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/vop-sheet/internal/handlers/sheet/v1alpha1"
	"github.com/KirkDiggler/vop-sheet/internal/pkg/idgen"
)

const shutdownTimeout = 30 * time.Second

var grpcPort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gRPC server",
	Long:  `Start the sheet gRPC server over the configured save slot.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides SHEET_GRPC_PORT)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port := cfg.GRPCPort
	if cmd.Flags().Changed("port") {
		port = grpcPort
	}

	a, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.close()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{SheetService: a.sheet})
	if err != nil {
		return fmt.Errorf("failed to create sheet handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	logger := grpc_logging.LoggerFunc(logFunc)
	recovery := grpc_recovery.WithRecoveryHandlerContext(recoverFunc)
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			v1alpha1.RequestIDInterceptor(idgen.NewUUID("req")),
			grpc_logging.UnaryServerInterceptor(logger, grpc_logging.WithLogOnEvents(grpc_logging.FinishCall)),
			grpc_recovery.UnaryServerInterceptor(recovery),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logger, grpc_logging.WithLogOnEvents(grpc_logging.FinishCall)),
			grpc_recovery.StreamServerInterceptor(recovery),
		),
	)

	v1alpha1.RegisterSheetServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.InfoContext(ctx, "gRPC server starting",
			"port", port,
			"storage", cfg.Storage.String(),
			"slot", cfg.Slot)
		if err := srv.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		slog.Info("shutting down gRPC server")
		healthServer.Shutdown()
		gracefulStop(srv)
		return nil
	})

	return g.Wait()
}

// gracefulStop drains in-flight calls, forcing a stop after shutdownTimeout
func gracefulStop(srv *grpc.Server) {
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-time.After(shutdownTimeout):
		slog.Warn("graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		slog.Info("server stopped gracefully")
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}

func recoverFunc(ctx context.Context, p any) error {
	slog.ErrorContext(ctx, "recovered from panic", "panic", fmt.Sprint(p))
	return status.Error(codes.Internal, "internal error")
}
