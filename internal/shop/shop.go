// Package shop filters the product catalog for the Shop tab.
package shop

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jask/storygram/internal/catalog"
)

// AllCategories is the category chip that disables the category filter.
const AllCategories = "All"

type Filter struct {
	Query    string
	Category string
}

// Matches reports whether p passes both the name query and the category.
func (f Filter) Matches(p catalog.Product) bool {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q != "" && !strings.Contains(strings.ToLower(p.Name), q) {
		return false
	}
	cat := strings.TrimSpace(f.Category)
	return cat == "" || cat == AllCategories || p.Category == cat
}

// Apply keeps the products matching f in catalog order.
func (f Filter) Apply(products []catalog.Product) []catalog.Product {
	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the chip list, making sure All comes first.
func Categories(c catalog.Catalog) []string {
	out := slices.DeleteFunc(slices.Clone(c.Categories), func(s string) bool { return s == AllCategories })
	return append([]string{AllCategories}, out...)
}

// Price formats a price the way the product cards show it.
func Price(v float64) string { return fmt.Sprintf("$%.2f", v) }

// Stars renders a rating as filled stars out of five plus the number.
func Stars(rating float64) string {
	n := int(rating + 0.5)
	n = max(0, min(5, n))
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n) + fmt.Sprintf(" %.1f", rating)
}
