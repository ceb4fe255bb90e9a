package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"mall", CategoryMall},
		{"Food-Court", CategoryFoodCourt},
		{"foodcourt", CategoryFoodCourt},
		{" park ", CategoryPark},
		{"toll-plaza", CategoryToll},
		{"TOLL", CategoryToll},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseCategory("stadium")
	assert.Error(t, err)
}

func TestCategoryPresentation(t *testing.T) {
	for _, c := range AllCategories {
		assert.NotEmpty(t, c.Label(), "label for %s", c)
		assert.NotEmpty(t, c.Icon(), "icon for %s", c)
	}
	assert.Equal(t, "Toll Plazas", CategoryToll.Label())
}

func TestCategoryLabel_UnknownPanics(t *testing.T) {
	assert.Panics(t, func() { _ = Category("stadium").Label() })
	assert.Panics(t, func() { _ = Category("").Icon() })
}

func TestCrowdLevelRank(t *testing.T) {
	assert.Less(t, CrowdLevelHigh.Rank(), CrowdLevelMedium.Rank())
	assert.Less(t, CrowdLevelMedium.Rank(), CrowdLevelLow.Rank())
}
