package core

import (
	"slices"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

// BindingsForScope returns the bindings visible in scope, in registration
// order, skipping actions already listed so the footer shows each once.
func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	seen := make(map[string]bool, len(r.bindings))
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) || seen[b.Action] {
			continue
		}
		seen[b.Action] = true
		out = append(out, b)
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		if slices.ContainsFunc(b.Keys, func(k string) bool { return normalizeKey(k) == pressed }) {
			return true
		}
	}
	return false
}

// Action resolves a key press to the first action bound to it in scope.
// Bindings with an explicit scope win over wildcard ones.
func (r *KeyRegistry) Action(msg tea.KeyMsg, scope string) string {
	pressed := normalizeKey(msg.String())
	fallback := ""
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		if !slices.ContainsFunc(b.Keys, func(k string) bool { return normalizeKey(k) == pressed }) {
			continue
		}
		if slices.Contains(b.Scopes, scope) {
			return b.Action
		}
		if fallback == "" {
			fallback = b.Action
		}
	}
	return fallback
}

// normalizeKey folds case for named keys and chords ("Enter", "Ctrl+K").
// Single runes keep their case so "L" and "l" stay distinct.
func normalizeKey(k string) string {
	if k == " " {
		return "space"
	}
	k = strings.TrimSpace(k)
	if utf8.RuneCountInString(k) == 1 {
		return k
	}
	return strings.ToLower(k)
}

// scopeMatch treats a trailing "*" as a prefix wildcard, so "pane:home:*"
// covers every pane of the home tab.
func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
		if prefix, ok := strings.CutSuffix(s, "*"); ok && strings.HasPrefix(scope, prefix) {
			return true
		}
	}
	return false
}
