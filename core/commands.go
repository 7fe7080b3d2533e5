package core

import (
	"cmp"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Command is a palette entry. Execute runs on the UI loop with the live model.
type Command struct {
	ID          string
	Name        string
	Description string
	Scopes      []string
	Execute     func(m *Model) tea.Cmd
	Disabled    func(m *Model) (bool, string)
}

type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Disabled  bool
	Reason    string
}

type CommandRegistry struct {
	commands map[string]Command
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	reg := &CommandRegistry{commands: map[string]Command{}}
	for _, c := range cmds {
		reg.Register(c)
	}
	return reg
}

func (r *CommandRegistry) Register(c Command) {
	if c.ID == "" {
		return
	}
	r.commands[c.ID] = c
}

func (r *CommandRegistry) Len() int { return len(r.commands) }

// Search returns the commands visible in scope whose name, description or id
// contain every word of query. Enabled commands sort first, then by name.
func (r *CommandRegistry) Search(query, scope string, m *Model) []CommandResult {
	terms := strings.Fields(strings.ToLower(query))
	results := make([]CommandResult, 0, len(r.commands))
	for _, c := range r.commands {
		if !scopeMatch(scope, c.Scopes) {
			continue
		}
		hay := strings.ToLower(c.Name + " " + c.Description + " " + c.ID)
		if !slices.ContainsFunc(terms, func(t string) bool { return !strings.Contains(hay, t) }) {
			res := CommandResult{CommandID: c.ID, Name: c.Name, Desc: c.Description}
			if c.Disabled != nil {
				res.Disabled, res.Reason = c.Disabled(m)
			}
			results = append(results, res)
		}
	}
	slices.SortFunc(results, func(a, b CommandResult) int {
		if a.Disabled != b.Disabled {
			if !a.Disabled {
				return -1
			}
			return 1
		}
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.CommandID, b.CommandID))
	})
	return results
}

func (r *CommandRegistry) Execute(id string, m *Model) tea.Cmd {
	c, ok := r.commands[id]
	if !ok {
		return StatusCmd("Unknown command: " + id)
	}
	if c.Disabled != nil {
		if disabled, reason := c.Disabled(m); disabled {
			if reason == "" {
				reason = "command is disabled"
			}
			return StatusCmd(reason)
		}
	}
	if c.Execute == nil {
		return nil
	}
	m.Logger().Debug("command executed", "command", id)
	return c.Execute(m)
}
