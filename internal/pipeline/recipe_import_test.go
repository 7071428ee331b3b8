package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuisinehq/mercuriale/internal/common"
	"github.com/cuisinehq/mercuriale/internal/entity"
)

func TestRecipeRun_EndToEnd(t *testing.T) {
	text := "Tarte aux pommes\n" +
		"Ingrédients pour 8 personnes\n" +
		"250 g farine\n" +
		"125 g beurre\n" +
		"6 pommes golden\n" +
		"Préparation\n" +
		"Préchauffer le four à 210 degrés."
	snapshot := []entity.RecipeSheet{
		{Name: "Tarte aux pomme"},
		{Name: "Blanquette de veau"},
	}

	imp := NewRecipeImporter(&stubExtractor{text: text}, nil, nil)
	res, err := imp.Run(context.Background(), "fiche.pdf", snapshot, nil)
	require.NoError(t, err)

	assert.Equal(t, "Tarte aux pommes", res.Recipe.Name)
	assert.Equal(t, 8, res.Recipe.Portions)
	require.Len(t, res.Recipe.Ingredients, 3)
	assert.Equal(t, "pommes golden", res.Recipe.Ingredients[2].Name)
	assert.Equal(t, "unité", res.Recipe.Ingredients[2].Unit)

	require.Len(t, res.Duplicates, 1)
	assert.Equal(t, "Tarte aux pomme", res.Duplicates[0].Existing.Name)
	assert.Greater(t, res.Duplicates[0].Similarity, 0.8)
}

func TestRecipeRun_Incomplete(t *testing.T) {
	text := "Une page entière de prose qui ne contient aucune section structurée du tout"

	imp := NewRecipeImporter(&stubExtractor{text: text}, nil, nil)
	_, err := imp.Run(context.Background(), "fiche.pdf", nil, nil)
	require.ErrorIs(t, err, common.ErrRecipeIncomplete)
}

func TestRecipeRun_TooShort(t *testing.T) {
	imp := NewRecipeImporter(&stubExtractor{text: "abc"}, nil, nil)

	_, err := imp.Run(context.Background(), "fiche.pdf", nil, nil)
	require.ErrorIs(t, err, common.ErrExtractionFailed)
}
