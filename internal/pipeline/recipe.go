package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cuisinehq/mercuriale/internal/common"
	"github.com/cuisinehq/mercuriale/internal/entity"
	"github.com/cuisinehq/mercuriale/internal/extract"
	"github.com/cuisinehq/mercuriale/internal/match"
	"github.com/cuisinehq/mercuriale/internal/parse"
)

// RecipeResult is the parsed fiche plus its duplicate candidates.
type RecipeResult struct {
	Recipe     entity.ParsedRecipe
	Duplicates []entity.RecipeMatch
	Text       string
	Method     string
	Pages      int
	Confidence float32
}

type RecipeImporter struct {
	extractor extract.TextExtractor
	parser    *parse.RecipeParser
	logger    *slog.Logger
}

func NewRecipeImporter(tx extract.TextExtractor, parser *parse.RecipeParser, logger *slog.Logger) *RecipeImporter {
	if logger == nil {
		logger = slog.Default()
	}
	if parser == nil {
		parser = parse.NewRecipeParser()
	}
	return &RecipeImporter{extractor: tx, parser: parser, logger: logger}
}

// Run executes the recipe flow: acquire -> normalize -> section-parse ->
// resolve against the snapshot of existing sheets.
func (p *RecipeImporter) Run(ctx context.Context, path string, snapshot []entity.RecipeSheet, progress extract.ProgressFunc) (RecipeResult, error) {
	var res RecipeResult

	ext, err := p.extractor.Extract(ctx, path, progress)
	if err != nil {
		return res, err
	}
	if len(strings.TrimSpace(ext.Text)) < MinTextLength {
		p.logger.Warn("extraction too short", "path", path, "bytes", len(ext.Text))
		return res, fmt.Errorf("%w: %d chars extracted", common.ErrExtractionFailed, len(ext.Text))
	}
	res.Text = ext.Text
	res.Method = ext.Method
	res.Pages = ext.Pages
	res.Confidence = ext.Confidence

	lines := parse.NormalizeLines(ext.Text)
	recipe, err := p.parser.Parse(lines)
	if err != nil {
		// readable but unstructured: surfaced distinctly from extraction
		// failures so the caller can say what is missing
		p.logger.Warn("recipe incomplete",
			"path", path,
			"name_found", recipe.Name != "",
			"ingredients", len(recipe.Ingredients),
		)
		return res, err
	}
	recipe.Confidence = ext.Confidence
	res.Recipe = recipe
	res.Duplicates = match.ResolveRecipe(snapshot, recipe)

	p.logger.Info("recipe parsed",
		"name", recipe.Name,
		"portions", recipe.Portions,
		"ingredients", len(recipe.Ingredients),
		"duplicates", len(res.Duplicates),
	)
	return res, nil
}
