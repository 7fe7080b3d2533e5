package app

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/jask/storygram/core"
	"github.com/jask/storygram/internal/catalog"
	"github.com/jask/storygram/internal/config"
	"github.com/jask/storygram/internal/logger"
	"github.com/jask/storygram/internal/social"
	"github.com/jask/storygram/internal/story"
)

var Module = fx.Module("storygram",
	fx.Provide(
		config.Load,
		logger.NewRelay,
		newLogger,
		newCatalog,
		social.New,
		core.NewBridge,
		newViewer,
		newModel,
		newProgram,
	),
	fx.Invoke(run),
)

// New builds the application with fx's own events routed to the app logger.
func New(opts ...fx.Option) *fx.App {
	return fx.New(append([]fx.Option{
		Module,
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),
	}, opts...)...)
}

func newLogger(lc fx.Lifecycle, cfg config.Config, relay *logger.Relay) (*slog.Logger, error) {
	log, closer, err := logger.New(cfg.Log, relay)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(closer.Close))
	return log, nil
}

func newCatalog(cfg config.Config, log *slog.Logger) (catalog.Catalog, error) {
	c, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return catalog.Catalog{}, err
	}
	log.Info("catalog loaded", "path", cfg.Catalog.Path, "stories", len(c.Stories), "posts", len(c.Posts), "reels", len(c.Reels))
	return c, nil
}

func newViewer(cfg config.Config, c catalog.Catalog, bridge *core.Bridge, log *slog.Logger) *story.Viewer {
	return story.NewViewer(c.StoryCollection(),
		story.WithDwell(cfg.Story.Dwell),
		story.WithDispatcher(bridge.Dispatch),
		story.WithLogger(log.With("component", "story")),
	)
}

func newModel(cfg config.Config, c catalog.Catalog, viewer *story.Viewer, state *social.State, log *slog.Logger) core.Model {
	defaults := core.DefaultKeyBindings()
	known := core.DefaultKeybindingsByAction(defaults)
	for action := range cfg.Keys {
		if _, ok := known[action]; !ok {
			log.Warn("unknown key action in config", "action", action)
		}
	}
	keys := core.NewKeyRegistry(core.ApplyActionKeybindings(defaults, cfg.Keys))
	m := core.NewModel(Tabs(c, viewer, state), keys, core.NewCommandRegistry(nil), log)
	ConfigureModel(&m, viewer, state)
	if !m.SwitchTabID(cfg.UI.StartTab) {
		log.Warn("unknown start tab, using home", "tab", cfg.UI.StartTab)
	}
	return m
}

func newProgram(cfg config.Config, m core.Model) *tea.Program {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	return tea.NewProgram(m, opts...)
}

// run ties the program to the fx lifecycle: start runs it in the background,
// quitting it shuts the app down, and stopping the app quits it.
func run(lc fx.Lifecycle, sd fx.Shutdowner, p *tea.Program, bridge *core.Bridge, relay *logger.Relay, log *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			bridge.Attach(p)
			relay.Attach(func(level slog.Level, msg string) {
				// Records may come from inside Update; Send would block the loop.
				go bridge.Send(core.StatusMsg{Text: msg, IsErr: level >= slog.LevelError})
			})
			go func() {
				if _, err := p.Run(); err != nil {
					log.Error("program exited", "error", err)
				}
				bridge.Detach()
				if err := sd.Shutdown(); err != nil {
					log.Error("shutdown", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			relay.Attach(nil)
			bridge.Detach()
			p.Quit()
			return nil
		},
	})
}
