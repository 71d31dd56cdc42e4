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
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-alchemy/internal/handlers/alchemy/v1alpha1"
	"github.com/KirkDiggler/rpg-alchemy/internal/orchestrators/index"
	redisclient "github.com/KirkDiggler/rpg-alchemy/internal/redis"
)

var (
	grpcPort   int
	catalogDir string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the RPG Alchemy gRPC server backed by Redis and the catalog directory.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides ALCHEMY_PORT)")
	serverCmd.Flags().StringVar(&catalogDir, "catalog-dir", "", "Catalog directory (overrides ALCHEMY_CATALOG_DIR)")
}

func runServer(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(grpcPort, catalogDir)
	if err != nil {
		return err
	}

	deps, err := newDependencies(cfg)
	if err != nil {
		return err
	}
	defer deps.close()

	pingCtx, cancelPing := context.WithTimeout(ctx, 5*time.Second)
	err = redisclient.Ping(pingCtx, deps.redis)
	cancelPing()
	if err != nil {
		return err
	}
	slog.Info("Connected to redis", "addr", cfg.RedisAddr, "db", cfg.RedisDB)

	srv, healthServer, err := newGRPCServer(deps)
	if err != nil {
		return err
	}

	if cfg.BuildOnStartup {
		// Index readers still work against live catalogs while this runs;
		// health flips to SERVING once the persisted index is fresh.
		healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
		go buildOnStartup(ctx, deps, cfg.Catalogs, healthServer)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.Port)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Received shutdown signal, gracefully stopping...")
		healthServer.Shutdown()
		stopGracefully(srv, 30*time.Second)
		return nil
	case err := <-errChan:
		return err
	}
}

func newGRPCServer(deps *dependencies) (*grpc.Server, *health.Server, error) {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
	)

	alchemyHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		IndexService:   deps.indexService,
		FormulaService: deps.formulaService,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create alchemy handler: %w", err)
	}
	v1alpha1.RegisterAlchemyServiceServer(srv, alchemyHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	return srv, healthServer, nil
}

func buildOnStartup(ctx context.Context, deps *dependencies, catalogs []string, healthServer *health.Server) {
	defer healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	output, err := deps.indexService.BuildIndex(ctx, &index.BuildIndexInput{
		Catalogs: catalogs,
		Mode:     index.ModeFull,
	})
	if err != nil {
		slog.Error("Startup index build failed", "error", err)
		return
	}
	slog.Info("Startup index build finished",
		"build_id", output.Metadata.BuildID,
		"entries", output.Metadata.EntryCount,
		"skipped_catalogs", output.SkippedCatalogs)
}

// stopGracefully waits for in-flight calls, then forces the stop after timeout.
func stopGracefully(srv *grpc.Server, timeout time.Duration) {
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-time.After(timeout):
		slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		slog.Info("Server stopped gracefully")
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
