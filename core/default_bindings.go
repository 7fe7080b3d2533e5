package core

import (
	"fmt"
	"strings"
)

const (
	ScopeStory    = "screen:story"
	ScopeComments = "screen:comments"
	ScopeCommand  = "screen:command"
	ScopeStories  = "pane:home:stories"
	ScopeFeed     = "pane:home:feed"
	ScopeSearch   = "tab:search"
	ScopeReels    = "tab:reels"
	ScopeShop     = "tab:shop"
	ScopeProfile  = "tab:profile"
)

var tabScopes = []string{"pane:*", "tab:*"}

func DefaultKeyBindings() []KeyBinding {
	b := []KeyBinding{
		{Keys: []string{"left", "h"}, Action: "story-back", Description: "prev image", Scopes: []string{ScopeStory}},
		{Keys: []string{"right", "l", "space"}, Action: "story-forward", Description: "next image", Scopes: []string{ScopeStory}},
		{Keys: []string{"esc", "q"}, Action: "story-close", Description: "close", Scopes: []string{ScopeStory}},

		{Keys: []string{"enter"}, Action: "comment-submit", Description: "post", Scopes: []string{ScopeComments}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{ScopeComments, ScopeCommand}},
		{Keys: []string{"enter"}, Action: "select", Description: "run", Scopes: []string{ScopeCommand}},

		{Keys: []string{"left", "h"}, Action: "story-prev", Description: "prev story", Scopes: []string{ScopeStories}},
		{Keys: []string{"right", "l"}, Action: "story-next", Description: "next story", Scopes: []string{ScopeStories}},
		{Keys: []string{"enter"}, Action: "story-open", Description: "watch", Scopes: []string{ScopeStories}},

		{Keys: []string{"up", "k"}, Action: "item-up", Description: "up", Scopes: []string{ScopeFeed, ScopeSearch, ScopeReels}},
		{Keys: []string{"down", "j"}, Action: "item-down", Description: "down", Scopes: []string{ScopeFeed, ScopeSearch, ScopeReels}},
		{Keys: []string{"l"}, Action: "toggle-like", Description: "like", Scopes: []string{ScopeFeed, ScopeReels}},
		{Keys: []string{"f"}, Action: "toggle-follow", Description: "follow", Scopes: []string{ScopeFeed, ScopeSearch, ScopeReels}},
		{Keys: []string{"s"}, Action: "toggle-save", Description: "save", Scopes: []string{ScopeFeed, ScopeReels}},
		{Keys: []string{"m"}, Action: "toggle-mute", Description: "mute", Scopes: []string{ScopeReels}},
		{Keys: []string{"p", "space"}, Action: "toggle-pause", Description: "play/pause", Scopes: []string{ScopeReels}},
		{Keys: []string{"c"}, Action: "open-comments", Description: "comments", Scopes: []string{ScopeReels}},

		{Keys: []string{"/"}, Action: "focus-input", Description: "type", Scopes: []string{ScopeSearch, ScopeShop}},
		{Keys: []string{"ctrl+u"}, Action: "clear-input", Description: "clear", Scopes: []string{ScopeSearch, ScopeShop}},
		{Keys: []string{"tab"}, Action: "next-kind", Description: "results", Scopes: []string{ScopeSearch}},
		{Keys: []string{"x"}, Action: "remove-recent", Description: "remove", Scopes: []string{ScopeSearch}},
		{Keys: []string{"left"}, Action: "category-prev", Description: "category", Scopes: []string{ScopeShop}},
		{Keys: []string{"right"}, Action: "category-next", Description: "category", Scopes: []string{ScopeShop}},
		{Keys: []string{"tab"}, Action: "next-section", Description: "section", Scopes: []string{ScopeProfile}},

		{Keys: []string{"esc"}, Action: "pane-blur", Description: "unfocus", Scopes: []string{"pane:*"}},
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "commands", Scopes: tabScopes},
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: tabScopes},
	}
	for i, title := range []string{"home", "search", "reels", "shop", "profile"} {
		b = append(b, KeyBinding{
			Keys:        []string{fmt.Sprint(i + 1)},
			Action:      fmt.Sprintf("switch-tab-%d", i+1),
			Description: title,
			Scopes:      tabScopes,
		})
	}
	return b
}

func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings replaces the keys of every binding whose action has
// an override. Overrides with no keys are ignored.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
