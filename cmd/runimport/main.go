package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/cuisinehq/mercuriale/gen/ent"
	"github.com/cuisinehq/mercuriale/internal/common"
	"github.com/cuisinehq/mercuriale/internal/entity"
	"github.com/cuisinehq/mercuriale/internal/extract"
	"github.com/cuisinehq/mercuriale/internal/ingest"
	"github.com/cuisinehq/mercuriale/internal/ocr"
	"github.com/cuisinehq/mercuriale/internal/pipeline"
	repo "github.com/cuisinehq/mercuriale/internal/repository"
)

// runimport drives the import pipeline from the shell: parse a document into
// candidate JSON, review/edit it, then commit the reviewed file.
func main() {
	_ = godotenv.Load()

	var (
		mode    = flag.String("mode", "pricelist", "pricelist | recipe")
		dir     = flag.String("dir", "", "ingest every supported file under this directory, then exit")
		commit  = flag.String("commit", "", "path to a reviewed records JSON file to persist")
		timeout = flag.Duration("timeout", 2*time.Minute, "overall timeout")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        10,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer func(entc *ent.Client) {
		if cerr := entc.Close(); cerr != nil {
			logger.Error("close ent client", "error", cerr)
		}
	}(entc)
	defer pool.Close()

	catalogRepo := repo.NewCatalogRepository(entc, logger)
	recipeRepo := repo.NewRecipeRepository(entc, logger)
	filesRepo := repo.NewImportFileRepository(entc, logger)
	ingestor := ingest.NewFSIngestor(filesRepo, logger)

	switch {
	case *commit != "":
		commitRecords(ctx, catalogRepo, *commit, logger)
	case *dir != "":
		ingestDirectory(ctx, ingestor, *dir, logger)
	default:
		if flag.NArg() != 1 {
			logger.Error("usage", "cmd", "runimport [-mode pricelist|recipe] <file>")
			os.Exit(2)
		}
		runPipeline(ctx, cfg, catalogRepo, recipeRepo, ingestor, *mode, flag.Arg(0), logger)
	}
}

func runPipeline(ctx context.Context, cfg *common.Config, catalogRepo repo.CatalogRepository, recipeRepo repo.RecipeRepository, ingestor ingest.Ingestor, mode, path string, logger *slog.Logger) {
	if _, err := ingestor.IngestPath(ctx, path); err != nil {
		logger.Error("ingest failed", "path", path, "error", err)
		os.Exit(1)
	}

	extractor := ocr.NewExtractor(ocr.Config{
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
	}, logger)
	textExtractor := extract.NewOCRAdapter(extractor, logger)

	progress := func(stage string, fraction float64) {
		fmt.Fprintf(os.Stderr, "\r%-12s %3.0f%%", stage, fraction*100)
	}

	start := time.Now()
	var out any
	switch mode {
	case "pricelist":
		entries, err := catalogRepo.List(ctx)
		if err != nil {
			logger.Error("catalog snapshot", "error", err)
			os.Exit(1)
		}
		snapshot := make([]entity.CatalogEntry, len(entries))
		for i, e := range entries {
			snapshot[i] = *e
		}

		importer := pipeline.NewPriceListImporter(textExtractor, nil, logger)
		res, err := importer.Run(ctx, path, snapshot, progress)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			logger.Error("import failed", "path", path, "error", err)
			os.Exit(1)
		}
		out = struct {
			ToAdd          []entity.ParsedRecord `json:"to_add"`
			Duplicates     []entity.PriceMatch   `json:"duplicates"`
			UnmatchedLines int                   `json:"unmatched_lines"`
			Method         string                `json:"method"`
			Pages          int                   `json:"pages"`
			Confidence     float32               `json:"confidence"`
		}{res.ToAdd, res.Duplicates, res.UnmatchedLines, res.Method, res.Pages, res.Confidence}

	case "recipe":
		sheets, err := recipeRepo.List(ctx)
		if err != nil {
			logger.Error("recipe snapshot", "error", err)
			os.Exit(1)
		}
		snapshot := make([]entity.RecipeSheet, len(sheets))
		for i, sh := range sheets {
			snapshot[i] = *sh
		}

		importer := pipeline.NewRecipeImporter(textExtractor, nil, logger)
		res, err := importer.Run(ctx, path, snapshot, progress)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			logger.Error("import failed", "path", path, "error", err)
			os.Exit(1)
		}
		out = struct {
			Recipe     entity.ParsedRecipe  `json:"recipe"`
			Duplicates []entity.RecipeMatch `json:"duplicates"`
			Method     string               `json:"method"`
			Pages      int                  `json:"pages"`
			Confidence float32              `json:"confidence"`
		}{res.Recipe, res.Duplicates, res.Method, res.Pages, res.Confidence}

	default:
		logger.Error("unknown mode", "mode", mode)
		os.Exit(2)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Error("encode output", "error", err)
		os.Exit(1)
	}
	logger.Info("import OK", "mode", mode, "duration_ms", time.Since(start).Milliseconds())
}

func commitRecords(ctx context.Context, catalogRepo repo.CatalogRepository, path string, logger *slog.Logger) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read records file", "path", path, "error", err)
		os.Exit(1)
	}

	schema := pipeline.BuildRecordsJSONSchema()
	if err := pipeline.ValidateJSONAgainstSchema(schema, data); err != nil {
		logger.Error("records payload invalid", "path", path, "error", err)
		os.Exit(1)
	}

	var records []*entity.ParsedRecord
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Error("decode records", "path", path, "error", err)
		os.Exit(1)
	}

	created, err := catalogRepo.BulkCreateFromRecords(ctx, records)
	if err != nil {
		logger.Error("commit failed", "error", err)
		os.Exit(1)
	}
	logger.Info("commit OK", "created", created)
}

func ingestDirectory(ctx context.Context, ingestor ingest.Ingestor, root string, logger *slog.Logger) {
	results, stats, err := ingestor.IngestDirectory(ctx, root, true)
	if err != nil {
		logger.Error("directory ingest failed", "root", root, "error", err)
		os.Exit(1)
	}
	for _, r := range results {
		if r.Err != "" {
			logger.Warn("file skipped", "path", r.SourcePath, "error", r.Err)
		}
	}
	logger.Info("directory ingest completed",
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"deduplicated", stats.Deduplicated,
		"failed", stats.Failed,
	)
}
