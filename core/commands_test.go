package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSearchFiltersByScopeAndDisabled(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "a", Name: "Alpha", Scopes: []string{"tab:a"}},
		{ID: "b", Name: "Beta", Scopes: []string{"tab:b"}, Disabled: func(m *Model) (bool, string) { return true, "blocked" }},
	})
	m := NewModel(nil, NewKeyRegistry(nil), reg, nil)
	resA := reg.Search("", "tab:a", &m)
	if len(resA) != 1 || resA[0].CommandID != "a" {
		t.Fatalf("expected only command a in tab:a, got %+v", resA)
	}
	resB := reg.Search("", "tab:b", &m)
	if len(resB) != 1 || !resB[0].Disabled || resB[0].Reason != "blocked" {
		t.Fatalf("expected disabled command in tab:b, got %+v", resB)
	}
}

func TestSearchMatchesEveryWord(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "story:dormammu", Name: "Open story: Dormammu"},
		{ID: "story:sara", Name: "Open story: Sara"},
		{ID: "tab:shop", Name: "Go to Shop"},
	})
	m := NewModel(nil, NewKeyRegistry(nil), reg, nil)
	res := reg.Search("open dorm", "tab:home", &m)
	if len(res) != 1 || res[0].CommandID != "story:dormammu" {
		t.Fatalf("expected dormammu only, got %+v", res)
	}
	if all := reg.Search("", "tab:home", &m); len(all) != 3 || all[0].Name != "Go to Shop" {
		t.Fatalf("expected name order, got %+v", all)
	}
}

func TestExecuteRespectsDisabled(t *testing.T) {
	ran := false
	reg := NewCommandRegistry([]Command{
		{ID: "off", Name: "Off", Disabled: func(*Model) (bool, string) { return true, "" }, Execute: func(*Model) tea.Cmd { ran = true; return nil }},
		{ID: "on", Name: "On", Execute: func(m *Model) tea.Cmd { m.SetStatus("ran"); return nil }},
	})
	m := NewModel(nil, NewKeyRegistry(nil), reg, nil)
	cmd := reg.Execute("off", &m)
	if ran {
		t.Fatalf("disabled command must not run")
	}
	if msg, ok := cmd().(StatusMsg); !ok || msg.Text != "command is disabled" {
		t.Fatalf("expected disabled status, got %+v", msg)
	}
	reg.Execute("on", &m)
	if text, _ := m.Status(); text != "ran" {
		t.Fatalf("expected command to run, status %q", text)
	}
	if msg := reg.Execute("missing", &m)().(StatusMsg); msg.Text != "Unknown command: missing" {
		t.Fatalf("unexpected %q", msg.Text)
	}
}

func TestCommandExecuteMsgRoutes(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "go", Name: "Go", Execute: func(m *Model) tea.Cmd { m.SwitchTab(1); return nil }},
	})
	m := NewModel([]Tab{&routerTab{id: "a"}, &routerTab{id: "b"}}, NewKeyRegistry(nil), reg, nil)
	next, _ := m.Update(CommandExecuteMsg{CommandID: "go"})
	if next.(Model).ActiveTab() != 1 {
		t.Fatalf("command should switch tab")
	}
}
