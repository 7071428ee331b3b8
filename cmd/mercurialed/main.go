package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/cuisinehq/mercuriale/gen/proto/mercuriale/v1"
	"github.com/cuisinehq/mercuriale/internal/common"
	"github.com/cuisinehq/mercuriale/internal/export"
	"github.com/cuisinehq/mercuriale/internal/extract"
	"github.com/cuisinehq/mercuriale/internal/ingest"
	"github.com/cuisinehq/mercuriale/internal/ocr"
	"github.com/cuisinehq/mercuriale/internal/pipeline"
	repo "github.com/cuisinehq/mercuriale/internal/repository"
	svc "github.com/cuisinehq/mercuriale/internal/server"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(requestIDInterceptor(logger)))

	catalogRepo := repo.NewCatalogRepository(entc, logger)
	recipeRepo := repo.NewRecipeRepository(entc, logger)
	stockRepo := repo.NewStockRepository(entc, logger)
	filesRepo := repo.NewImportFileRepository(entc, logger)
	jobsRepo := repo.NewImportJobRepository(entc, logger)

	extractor := ocr.NewExtractor(ocr.Config{
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
	}, logger)
	textExtractor := extract.NewOCRAdapter(extractor, logger)

	priceImporter := pipeline.NewPriceListImporter(textExtractor, nil, logger)
	recipeImporter := pipeline.NewRecipeImporter(textExtractor, nil, logger)

	exportSvc := export.NewService(catalogRepo, recipeRepo, logger)
	ingestor := ingest.NewFSIngestor(filesRepo, logger)

	v1.RegisterCatalogServiceServer(grpcServer, svc.NewCatalogService(catalogRepo, stockRepo, exportSvc, logger))
	v1.RegisterRecipeServiceServer(grpcServer, svc.NewRecipeService(recipeRepo, catalogRepo, stockRepo, logger))
	v1.RegisterImportServiceServer(grpcServer, svc.NewImportService(
		ingestor, filesRepo, jobsRepo, catalogRepo, recipeRepo, priceImporter, recipeImporter,
		cfg.Import.ExtractTimeout, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("mercuriale listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}

// requestIDInterceptor tags every RPC with a request ID and logs its outcome.
func requestIDInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx = common.WithRequestID(ctx, uuid.NewString())
		start := time.Now()
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Warn("rpc failed",
				"method", info.FullMethod,
				"request_id", common.RequestIDFromContext(ctx),
				"duration", time.Since(start),
				"error", err)
		} else {
			logger.Info("rpc handled",
				"method", info.FullMethod,
				"request_id", common.RequestIDFromContext(ctx),
				"duration", time.Since(start))
		}
		return resp, err
	}
}
