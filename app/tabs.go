package app

import (
	"github.com/jask/storygram/core"
	"github.com/jask/storygram/internal/catalog"
	"github.com/jask/storygram/internal/social"
	"github.com/jask/storygram/internal/story"
	"github.com/jask/storygram/tabs"
)

// Tabs returns the five tabs in header order. Keys 1-5 follow this order.
func Tabs(c catalog.Catalog, viewer *story.Viewer, state *social.State) []core.Tab {
	return []core.Tab{
		tabs.NewHomeTab(c, viewer, state),
		tabs.NewSearchTab(c, state),
		tabs.NewReelsTab(c.Reels, state, c.Profile.UserName),
		tabs.NewShopTab(c),
		tabs.NewProfileTab(c, state),
	}
}
