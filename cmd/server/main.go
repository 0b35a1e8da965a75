package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/quentinrf/the-light/internal/adapters/canvas"
	grpcAdapter "github.com/quentinrf/the-light/internal/adapters/grpc"
	"github.com/quentinrf/the-light/internal/adapters/memory"
	"github.com/quentinrf/the-light/internal/adapters/mock"
	"github.com/quentinrf/the-light/internal/adapters/sqlite"
	"github.com/quentinrf/the-light/internal/adapters/sysfs"
	"github.com/quentinrf/the-light/internal/domain"
	"github.com/quentinrf/the-light/internal/ports"
	"github.com/quentinrf/the-light/pkg/pb"
	"github.com/quentinrf/the-light/pkg/tlsconfig"
)

func main() {
	// Initialize logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Read configuration from environment
	config := loadConfig()

	if level, err := zerolog.ParseLevel(config.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	} else {
		log.Warn().Str("log_level", config.LogLevel).Msg("unknown log level, using info")
	}

	log.Info().Msg("starting the light")

	// Initialize journal
	var journal domain.EventJournal
	switch config.JournalType {
	case "sqlite":
		j, err := sqlite.NewEventJournal(config.DBPath)
		if err != nil {
			log.Fatal().Err(err).Str("db_path", config.DBPath).Msg("failed to open SQLite database")
		}
		defer j.Close()
		journal = j
		log.Info().Str("db_path", config.DBPath).Msg("initialized SQLite journal")
	case "none":
		log.Info().Msg("event journal disabled")
	default:
		journal = memory.NewEventJournal()
		log.Info().Msg("initialized in-memory journal")
	}

	// Initialize torch
	var torch ports.Flashlight
	switch config.TorchType {
	case "sysfs":
		torch = sysfs.NewLEDTorch(config.TorchLED, sysfs.DefaultLockWait)
		log.Info().Str("led", config.TorchLED).Msg("initialized sysfs torch")
	case "none":
		torch = mock.NewMissingTorch()
		log.Info().Msg("initialized torch without hardware")
	case "busy":
		torch = mock.NewBusyTorch()
		log.Info().Msg("initialized permanently busy torch")
	default:
		torch = mock.NewFakeTorch()
		log.Info().Msg("initialized mock torch")
	}
	defer torch.Close()

	// Initialize screen
	surface := canvas.NewSurface(config.FrameWidth, config.FrameHeight, config.FramePath)
	log.Info().
		Int("width", config.FrameWidth).
		Int("height", config.FrameHeight).
		Str("frame_path", config.FramePath).
		Msg("initialized canvas surface")

	// Activate: default state and the initial render before any input
	var opts []ports.Option
	if journal != nil {
		opts = append(opts, ports.WithJournal(journal))
	}
	engine := domain.NewEngine(domain.DefaultTrafficLights())
	ctrl := ports.NewController(engine, surface, surface, torch, opts...)
	ctrl.Activate(context.Background())

	// Initialize gRPC handler
	handler := grpcAdapter.NewLightServiceHandler(ctrl, journal)

	// Configure TLS if certificates are provided
	var serverOpts []grpc.ServerOption
	if config.TLSCert != "" {
		tlsCfg, err := tlsconfig.LoadServerTLS(config.TLSCert, config.TLSKey, config.TLSCA)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load TLS config")
		}
		serverOpts = append(serverOpts, grpc.Creds(credentials.NewTLS(tlsCfg)))
		log.Info().Msg("mTLS enabled")
	} else {
		log.Warn().Msg("TLS_CERT not set, starting without TLS (dev mode only)")
	}

	// Create gRPC server
	grpcServer := grpc.NewServer(serverOpts...)
	pb.RegisterLightServiceServer(grpcServer, handler)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(pb.LightService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", config.Port))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to listen")
	}

	log.Info().Str("port", config.Port).Msg("gRPC server listening")

	go func() {
		if err := grpcServer.Serve(listener); err != nil {
			log.Fatal().Err(err).Msg("failed to serve")
		}
	}()

	// Start journal retention
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if journal != nil {
		pruner := ports.NewPruner(journal, config.PruneInterval, config.Retention)
		go pruner.Start(ctx)
	}

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	cancel() // Stop pruner
	healthServer.Shutdown()
	grpcServer.GracefulStop()

	// Leave the torch dark on exit
	if err := torch.SetTorch(context.Background(), false); err != nil {
		log.Warn().Err(err).Msg("failed to switch torch off")
	}

	log.Info().Msg("server stopped")
}

// Config holds application configuration
type Config struct {
	Port          string
	LogLevel      string
	TorchType     string // "mock" | "none" | "busy" | "sysfs"
	TorchLED      string // LED class directory (used when TorchType=sysfs)
	JournalType   string // "memory" | "sqlite" | "none"
	DBPath        string // SQLite database file path (used when JournalType=sqlite)
	Retention     time.Duration
	PruneInterval time.Duration
	FramePath     string // PNG written on every render when set
	FrameWidth    int
	FrameHeight   int
	TLSCert       string // path to this service's certificate
	TLSKey        string // path to this service's private key
	TLSCA         string // path to the CA certificate
}

// loadConfig reads configuration from environment variables
func loadConfig() Config {
	return Config{
		Port:          getEnv("PORT", "50051"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		TorchType:     getEnv("TORCH_TYPE", "mock"),
		TorchLED:      getEnv("TORCH_LED", "/sys/class/leds/flash"),
		JournalType:   getEnv("JOURNAL_TYPE", "memory"),
		DBPath:        getEnv("DB_PATH", "./light.db"),
		Retention:     getDuration("JOURNAL_RETENTION", 30*24*time.Hour),
		PruneInterval: getDuration("PRUNE_INTERVAL", time.Hour),
		FramePath:     os.Getenv("FRAME_PATH"),
		FrameWidth:    getInt("FRAME_WIDTH", 390),
		FrameHeight:   getInt("FRAME_HEIGHT", 844),
		TLSCert:       os.Getenv("TLS_CERT"),
		TLSKey:        os.Getenv("TLS_KEY"),
		TLSCA:         os.Getenv("TLS_CA"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
		log.Warn().Str(key, v).Msg("invalid duration, using default")
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		log.Warn().Str(key, v).Msg("invalid integer, using default")
	}
	return fallback
}
