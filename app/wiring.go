package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/storygram/core"
	"github.com/jask/storygram/internal/social"
	"github.com/jask/storygram/internal/story"
	"github.com/jask/storygram/screens"
	"github.com/jask/storygram/tabs"
)

func ConfigureModel(m *core.Model, viewer *story.Viewer, state *social.State) {
	if m == nil {
		return
	}
	m.OpenCommandModal = func(model *core.Model, scope string) core.Screen {
		return screens.NewCommandScreen(scope, model.Keys(),
			func(query string) []screens.CommandOption {
				results := model.CommandRegistry().Search(query, scope, model)
				out := make([]screens.CommandOption, 0, len(results))
				for _, r := range results {
					out = append(out, screens.CommandOption{ID: r.CommandID, Name: r.Name, Desc: r.Desc, Disabled: r.Disabled, Reason: r.Reason})
				}
				return out
			},
			func(id string) tea.Msg { return core.CommandExecuteMsg{CommandID: id} },
		)
	}
	RegisterCommands(m.CommandRegistry(), m.Tabs(), viewer, state)
}

func RegisterCommands(reg *core.CommandRegistry, all []core.Tab, viewer *story.Viewer, state *social.State) {
	for i, t := range all {
		reg.Register(core.Command{
			ID:          "switch-" + t.ID(),
			Name:        "Go to " + t.Title(),
			Description: fmt.Sprintf("Activate tab %d", i+1),
			Execute: func(m *core.Model) tea.Cmd {
				m.SwitchTab(i)
				return core.StatusCmd(t.Title())
			},
		})
	}
	for i, s := range viewer.Stories().All() {
		reg.Register(core.Command{
			ID:          "story-" + s.ID,
			Name:        "Watch story: " + s.Name,
			Description: fmt.Sprintf("%d images", s.Len()),
			Execute: func(m *core.Model) tea.Cmd {
				return tabs.OpenStory(m, viewer, i)
			},
		})
	}
	reg.Register(core.Command{
		ID:          "clear-toggles",
		Name:        "Clear likes, follows and saves",
		Description: "Reset every toggle made this session",
		Disabled: func(*core.Model) (bool, string) {
			for _, a := range []social.Action{social.Like, social.Follow, social.Save, social.Mute, social.Pause} {
				if state.Count(a) > 0 {
					return false, ""
				}
			}
			return true, "nothing to clear"
		},
		Execute: func(m *core.Model) tea.Cmd {
			state.Reset()
			m.Logger().Info("toggles cleared")
			return core.StatusCmd("Cleared")
		},
	})
}
