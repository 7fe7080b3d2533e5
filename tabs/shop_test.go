package tabs

import (
	"strings"
	"testing"
)

func TestShopCategoryChips(t *testing.T) {
	c := sample(t)
	tab := NewShopTab(c)
	m := newModel(tab)
	if got := len(tab.Visible()); got != len(c.Products) {
		t.Fatalf("All should show every product, got %d", got)
	}
	m = send(t, m, "right")
	if tab.Filter().Category != "Electronics" || len(tab.Visible()) != 4 {
		t.Fatalf("expected 4 electronics, got %d (%s)", len(tab.Visible()), tab.Filter().Category)
	}
	m = send(t, m, "right")
	if len(tab.Visible()) != 2 {
		t.Fatalf("expected 2 accessories, got %d", len(tab.Visible()))
	}
	m = send(t, m, "left", "left", "left")
	if tab.Filter().Category != "New Arrivals" {
		t.Fatalf("category chips should wrap, got %s", tab.Filter().Category)
	}
	if !strings.Contains(render(m, tab), "No products found") {
		t.Fatalf("empty category should say so")
	}
}

func TestShopQueryAndCategory(t *testing.T) {
	c := sample(t)
	tab := NewShopTab(c)
	m := newModel(tab)
	m = send(t, m, "/")
	m = typeInto(t, m, "MOUSE")
	m = send(t, m, "esc")
	if tab.CapturesInput() {
		t.Fatalf("esc should leave the query box")
	}
	visible := tab.Visible()
	if len(visible) != 1 || visible[0].Name != "Gaming Mouse" {
		t.Fatalf("expected gaming mouse, got %+v", visible)
	}
	out := render(m, tab)
	if !strings.Contains(out, "$59.99") || !strings.Contains(out, "Gaming Mouse") {
		t.Fatalf("expected product card:\n%s", out)
	}
	m = send(t, m, "right")
	if len(tab.Visible()) != 0 {
		t.Fatalf("mouse is not electronics")
	}
	m = send(t, m, "ctrl+u")
	if len(tab.Visible()) != 4 {
		t.Fatalf("clearing the query keeps the category filter, got %d", len(tab.Visible()))
	}
}

func TestShopRendersTwoPerRow(t *testing.T) {
	c := sample(t)
	tab := NewShopTab(c)
	m := newModel(tab)
	for _, line := range strings.Split(render(m, tab), "\n") {
		if strings.Contains(line, "Wireless Headphones") {
			if !strings.Contains(line, "Smartphone Pro") {
				t.Fatalf("expected the first two products on one row: %q", line)
			}
			return
		}
	}
	t.Fatalf("first product not rendered")
}
