package tabs

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/storygram/core"
	"github.com/jask/storygram/internal/catalog"
	"github.com/jask/storygram/internal/shop"
	"github.com/jask/storygram/widgets"
)

type ShopTab struct {
	products   []catalog.Product
	categories []string
	cat        int
	input      textinput.Model
}

func NewShopTab(c catalog.Catalog) *ShopTab {
	return &ShopTab{
		products:   c.Products,
		categories: shop.Categories(c),
		input:      newQueryInput("Search products"),
	}
}

func (t *ShopTab) ID() string          { return "shop" }
func (t *ShopTab) Title() string       { return "Shop" }
func (t *ShopTab) Scope() string       { return core.ScopeShop }
func (t *ShopTab) CapturesInput() bool { return t.input.Focused() }

func (t *ShopTab) Filter() shop.Filter {
	return shop.Filter{Query: t.input.Value(), Category: t.categories[t.cat]}
}

func (t *ShopTab) Visible() []catalog.Product {
	return t.Filter().Apply(t.products)
}

func (t *ShopTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if t.input.Focused() {
		_, cmd := updateQuery(&t.input, km)
		return cmd
	}
	switch {
	case m.IsAction(km, "focus-input"):
		return t.input.Focus()
	case m.IsAction(km, "clear-input"):
		t.input.Reset()
	case m.IsAction(km, "category-prev"):
		t.cat = wrap(t.cat-1, len(t.categories))
	case m.IsAction(km, "category-next"):
		t.cat = wrap(t.cat+1, len(t.categories))
	}
	return nil
}

const cardRows = 5

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(widgets.ColorBorder).
	Padding(0, 1)

func (t *ShopTab) Build(m *core.Model) widgets.Widget {
	return widgets.Func(func(width, height int) string {
		inner := max(1, width-4)
		t.input.Width = max(10, inner-4)
		lines := []string{t.input.View(), chips(t.categories, t.cat), ""}
		visible := t.Visible()
		if len(visible) == 0 {
			lines = append(lines, mutedStyle.Render("No products found"))
		}
		cardW := max(8, (inner-1)/2)
		for i := 0; i < len(visible); i += 2 {
			left := productCard(visible[i], cardW)
			right := ""
			if i+1 < len(visible) {
				right = productCard(visible[i+1], cardW)
			}
			lines = append(lines, strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right), "\n")...)
		}
		return widgets.Pane{Title: t.Title(), Content: strings.Join(lines, "\n"), Selected: true, Focused: t.input.Focused()}.Render(width, height)
	})
}

func productCard(p catalog.Product, width int) string {
	text := max(1, width-4)
	body := strings.Join([]string{
		titleStyle.Render(ansi.Truncate(p.Name, text, "…")),
		mutedStyle.Render(ansi.Truncate(p.Category, text, "…")),
		accentStyle.Render(shop.Price(p.Price)) + "  " + starStyle.Render(shop.Stars(p.Rating)),
	}, "\n")
	return cardStyle.Width(max(1, width-2)).Render(body)
}
