package search

import (
	"testing"

	"github.com/example/craftshop/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlankQueryReturnsNothing(t *testing.T) {
	assert.Empty(t, Search(catalog.Products(), ""))
	assert.Empty(t, Search(catalog.Products(), "   "))
	assert.Empty(t, Search(catalog.Products(), "\t\n"))
}

func TestExactNameOutranksLooseFieldMatch(t *testing.T) {
	products := []catalog.Product{
		{ID: "a", Name: "Woven Runner", Material: "brass", Region: "Moradabad"},
		{ID: "b", Name: "Brass Peacock Oil Lamp", Material: "brass", Region: "Moradabad"},
	}

	results := Search(products, "brass peacock oil lamp")
	require.NotEmpty(t, results)
	assert.Equal(t, "b", results[0].ID)
}

func TestMaterialOnlyMatchStillFound(t *testing.T) {
	results := Search(catalog.Products(), "jute")
	require.NotEmpty(t, results)
	for _, p := range results {
		assert.Contains(t, p.Name+" "+p.Description+" "+p.Material, "ute")
	}
}

func TestNoMatchExcluded(t *testing.T) {
	assert.Empty(t, Search(catalog.Products(), "zzzzqqqq"))
}

func TestResultsCappedAtSix(t *testing.T) {
	var many []catalog.Product
	for i := 0; i < 10; i++ {
		many = append(many, catalog.Product{
			ID:   string(rune('a' + i)),
			Name: "Cotton Cushion",
		})
	}

	results := Search(many, "cotton")
	assert.Len(t, results, MaxResults)
}

func TestTiesKeepCatalogOrder(t *testing.T) {
	products := []catalog.Product{
		{ID: "first", Name: "Cotton Throw"},
		{ID: "second", Name: "Cotton Quilt"},
	}

	results := Search(products, "cotton")
	require.Len(t, results, 2)
	assert.Equal(t, "first", results[0].ID)
	assert.Equal(t, "second", results[1].ID)
}

func TestCaseInsensitive(t *testing.T) {
	results := Search(catalog.Products(), "BRASS")
	require.NotEmpty(t, results)
}
