package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cuisinehq/mercuriale/constants"
	"github.com/cuisinehq/mercuriale/internal/common"
	"github.com/cuisinehq/mercuriale/internal/entity"
)

// DefaultPortions is assumed when the document never states a portion count.
const DefaultPortions = 4

const (
	minRecipeNameLength = 4
	maxRecipeNameLength = 99
	minInstructionLen   = 10
	nameSearchWindow    = 5
)

var (
	reIngredientsHeader  = regexp.MustCompile(`(?i)^(ingrédient|ingredient|pour\s+\d+\s+personne)`)
	reInstructionsHeader = regexp.MustCompile(`(?i)^(préparation|instruction|étape|réalisation)`)
	rePortions           = regexp.MustCompile(`(?i)(\d+)\s+personne`)
	reSectionKeyword     = regexp.MustCompile(`(?i)ingrédient|préparation|recette`)
	reStartsWithDigit    = regexp.MustCompile(`^\d`)

	// Ingredient lines come in two orderings. The unit is optional in the
	// quantity-first form ("3 oeufs"); it defaults to unité.
	reQtyFirst  = regexp.MustCompile(`(?i)^(\d+(?:[,.]?\d+)?)\s*(g|kg|l|ml|cl|piece|pièce|unité|unite|c\.?\s*à\s*s|c\.?\s*à\s*c|cs|cc)?\s+(.+)$`)
	reNameFirst = regexp.MustCompile(`(?i)^(.+?)\s+(\d+(?:[,.]?\d+)?)\s*(g|kg|l|ml|cl|piece|pièce|unité|unite)$`)
)

type recipeState int

const (
	stateHeader recipeState = iota
	stateIngredients
	stateInstructions
)

// RecipeParser walks the normalized line sequence with a three-state machine
// (header, ingredients, instructions) and assembles a ParsedRecipe.
type RecipeParser struct {
	defaultPortions int
}

func NewRecipeParser() *RecipeParser {
	return &RecipeParser{defaultPortions: DefaultPortions}
}

// Parse consumes the whole line sequence. It fails with ErrRecipeIncomplete
// when no name was found or no ingredient line matched: the document was
// readable, just not structured enough. Callers surface that separately
// from a hard extraction failure.
func (p *RecipeParser) Parse(lines []string) (entity.ParsedRecipe, error) {
	recipe := entity.ParsedRecipe{Portions: p.defaultPortions}

	// The name is the first plausible line near the top: short, not numeric,
	// not a section header.
	for i := 0; i < len(lines) && i < nameSearchWindow; i++ {
		if isRecipeName(lines[i]) {
			recipe.Name = lines[i]
			break
		}
	}

	state := stateHeader
	var instructions []string

	for _, line := range lines {
		switch {
		case reIngredientsHeader.MatchString(line):
			// Once instructions have begun, a stray ingredient header does
			// not revert the state.
			if state == stateInstructions {
				continue
			}
			state = stateIngredients
			if m := rePortions.FindStringSubmatch(line); m != nil {
				if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
					recipe.Portions = n
				}
			}
			continue
		case reInstructionsHeader.MatchString(line):
			state = stateInstructions
			continue
		}

		switch state {
		case stateIngredients:
			if ing, ok := ParseIngredientLine(line); ok {
				recipe.Ingredients = append(recipe.Ingredients, ing)
			}
			// non-matching lines are skipped silently
		case stateInstructions:
			if len([]rune(line)) > minInstructionLen {
				instructions = append(instructions, line)
			}
		}
	}
	recipe.Instructions = strings.Join(instructions, "\n")

	if recipe.Name == "" || len(recipe.Ingredients) == 0 {
		return recipe, common.ErrRecipeIncomplete
	}
	return recipe, nil
}

func isRecipeName(line string) bool {
	n := len([]rune(line))
	if n < minRecipeNameLength || n > maxRecipeNameLength {
		return false
	}
	if reStartsWithDigit.MatchString(line) {
		return false
	}
	return !reSectionKeyword.MatchString(line)
}

// ParseIngredientLine extracts {name, quantity, unit} from one ingredient
// line, accepting quantity-first and name-first orderings.
func ParseIngredientLine(line string) (entity.ParsedIngredient, bool) {
	if m := reQtyFirst.FindStringSubmatch(line); m != nil {
		q, err := parseDecimal(m[1])
		if err != nil {
			return entity.ParsedIngredient{}, false
		}
		return entity.ParsedIngredient{
			Name:     strings.TrimSpace(m[3]),
			Quantity: q,
			Unit:     constants.NormalizeUnit(m[2]),
		}, true
	}
	if m := reNameFirst.FindStringSubmatch(line); m != nil {
		q, err := parseDecimal(m[2])
		if err != nil {
			return entity.ParsedIngredient{}, false
		}
		return entity.ParsedIngredient{
			Name:     strings.TrimSpace(m[1]),
			Quantity: q,
			Unit:     constants.NormalizeUnit(m[3]),
		}, true
	}
	return entity.ParsedIngredient{}, false
}
