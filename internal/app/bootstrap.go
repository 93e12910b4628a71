package app

import (
	"errors"

	"github.com/dshills/dotwriter/internal/braille/editor"
	"github.com/dshills/dotwriter/internal/braille/mode"
	"github.com/dshills/dotwriter/internal/braille/mode/ueb"
	"github.com/dshills/dotwriter/internal/config"
	"github.com/dshills/dotwriter/internal/input/key"
	"github.com/dshills/dotwriter/internal/layout"
	"github.com/dshills/dotwriter/internal/prefs"
)

// bootstrap initializes components in dependency order.
func (app *Application) bootstrap(modes []mode.Mode) error {
	// 1. Mode registry
	app.modes = mode.NewRegistry(
		mode.WithStore(app.prefs),
		mode.WithLogger(app.logger),
	)
	if len(modes) == 0 {
		modes = []mode.Mode{ueb.NewGrade1()}
	}
	for _, m := range modes {
		if err := app.modes.Register(m); err != nil {
			return &InitError{Component: "modes", Err: err}
		}
	}
	if app.modes.Len() == 0 {
		return &InitError{Component: "modes", Err: ErrNoModes}
	}

	// 2. Editor, rebuilt on every mode switch
	app.recompute = parseRecompute(app.config.Editor.Recompute)
	app.unsubscribe = app.modes.OnChange(app.onModeChange)
	if err := app.modes.SetMode(app.initialModeID()); err != nil {
		return &InitError{Component: "modes", Err: err}
	}

	// 3. Layouts
	app.layouts = layout.NewSet()
	app.addCustomLayouts(app.config)
	app.layout = app.initialLayout()

	// 4. Key bindings
	bindings, err := bindingsFrom(app.config)
	if err != nil {
		return &InitError{Component: "key bindings", Err: err}
	}
	app.bindings = bindings

	return nil
}

// initialModeID picks the saved mode, then the configured one, then the
// first registered. A pinned mode skips the saved one.
func (app *Application) initialModeID() string {
	want := app.config.Editor.Mode
	if !app.modes.Has(want) {
		first := app.modes.Options()[0].ID
		app.logger.Warn("configured mode %q is not available, using %s", want, first)
		want = first
	} else if app.pinMode {
		return want
	}
	return app.modes.LoadPreference(want)
}

// initialLayout picks the saved layout, then the configured one, then the
// default. A pinned layout skips the saved one.
func (app *Application) initialLayout() layout.Layout {
	if app.pinLayout {
		if l, err := app.layouts.Get(app.config.Editor.Layout); err == nil {
			return l
		}
	}
	if saved, err := app.prefs.Get(prefs.KeyLayout); err == nil {
		if l, err := app.layouts.Get(saved); err == nil {
			return l
		}
		app.logger.Warn("saved layout %q is not available", saved)
	} else if !errors.Is(err, prefs.ErrNotFound) {
		app.logger.Warn("failed to read layout preference: %v", err)
	}

	if l, err := app.layouts.Get(app.config.Editor.Layout); err == nil {
		return l
	}
	app.logger.Warn("configured layout %q is not available, using %s", app.config.Editor.Layout, layout.Default)
	l, _ := app.layouts.Get(layout.Default)
	return l
}

// addCustomLayouts registers the layouts defined in cfg. A custom layout
// may redefine a built-in one. Invalid entries are logged and skipped.
func (app *Application) addCustomLayouts(cfg *config.Config) {
	layouts, err := cfg.CustomLayouts()
	if err != nil {
		app.logger.Warn("skipping invalid layouts: %v", err)
	}
	for _, l := range layouts {
		if err := app.layouts.Add(l, true); err != nil {
			app.logger.Warn("skipping layout %s: %v", l.ID, err)
		}
	}
}

// onModeChange replaces the editor, since mode state does not carry over
// between modes. Re-selecting the active mode keeps the document.
func (app *Application) onModeChange(ev mode.ChangeEvent) error {
	if app.editor != nil && ev.Previous != nil && ev.Previous.ID == ev.Current.ID {
		return nil
	}
	m := app.modes.Get(ev.Current.ID)
	if m == nil {
		return mode.ErrUnknownMode
	}
	app.editor = editor.New(m,
		editor.WithRecompute(app.recompute),
		editor.WithLogger(app.logger),
	)
	return nil
}

func parseRecompute(s string) editor.Recompute {
	r, _ := editor.ParseRecompute(s)
	return r
}

// bindingsFrom inverts the configured action bindings into a lookup by
// key event.
func bindingsFrom(cfg *config.Config) (map[key.Event]string, error) {
	byAction, err := cfg.Bindings()
	if err != nil {
		return nil, err
	}
	out := make(map[key.Event]string, len(byAction))
	for _, action := range config.Actions {
		ev, ok := byAction[action]
		if !ok {
			continue
		}
		if _, taken := out[ev]; taken {
			continue
		}
		out[ev] = action
	}
	return out, nil
}
