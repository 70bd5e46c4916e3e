package search

import (
	"sort"
	"strings"

	"github.com/example/craftshop/pkg/catalog"
)

// MaxResults caps the predictive dropdown.
const MaxResults = 6

// Field weights for the relevance score. A full-query substring hit on a
// tighter field outranks any accumulation of loose-field hits.
const (
	nameWeight        = 10
	categoryWeight    = 8
	descriptionWeight = 6
	materialWeight    = 4
	regionWeight      = 4

	nameTermBonus        = 2
	descriptionTermBonus = 1
)

type scored struct {
	product catalog.Product
	score   int
}

// Search ranks catalog entries against a free-text query and returns up to
// MaxResults matches, best first. Ties keep catalog order. A blank query
// matches nothing.
func Search(products []catalog.Product, query string) []catalog.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	terms := strings.Fields(q)

	var matches []scored
	for _, p := range products {
		name := strings.ToLower(p.Name)
		category := strings.ToLower(p.Category)
		description := strings.ToLower(p.Description)
		material := strings.ToLower(p.Material)
		region := strings.ToLower(p.Region)

		score := 0
		if strings.Contains(name, q) {
			score += nameWeight
		}
		if strings.Contains(category, q) {
			score += categoryWeight
		}
		if strings.Contains(description, q) {
			score += descriptionWeight
		}
		if strings.Contains(material, q) {
			score += materialWeight
		}
		if strings.Contains(region, q) {
			score += regionWeight
		}
		for _, term := range terms {
			if strings.Contains(name, term) {
				score += nameTermBonus
			}
			if strings.Contains(description, term) {
				score += descriptionTermBonus
			}
		}

		if score > 0 {
			matches = append(matches, scored{product: p, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if len(matches) > MaxResults {
		matches = matches[:MaxResults]
	}
	out := make([]catalog.Product, len(matches))
	for i, m := range matches {
		out[i] = m.product
	}
	return out
}
