package app

import (
	"errors"
	"unicode/utf8"

	"github.com/dshills/dotwriter/internal/braille/editor"
	"github.com/dshills/dotwriter/internal/config"
	"github.com/dshills/dotwriter/internal/input/key"
	"github.com/dshills/dotwriter/internal/logging"
	"github.com/dshills/dotwriter/internal/prefs"
)

// HandleKey processes one key event. Bound actions take precedence over
// dot keys. It returns ErrQuit when the session should end.
func (app *Application) HandleKey(ev key.Event) error {
	ev = ev.Normalize()

	app.mu.Lock()
	defer app.mu.Unlock()

	handled, err := app.handleKeyLocked(ev)
	app.metrics.RecordKey(handled)
	if !handled {
		app.logger.Debug("ignored key %s", ev)
	}
	return err
}

func (app *Application) handleKeyLocked(ev key.Event) (bool, error) {
	if action, ok := app.bindings[ev]; ok {
		return true, app.runAction(action)
	}

	if ev.IsPlainRune() {
		if d, ok := app.layout.Dot(ev.Rune); ok {
			app.editor.ToggleDot(d)
			return true, nil
		}
		return false, nil
	}

	if ev.Key == key.KeyDelete && ev.Modifiers == key.ModNone {
		app.deleteLastChar()
		return true, nil
	}

	return false, nil
}

// RunAction runs a bindable action by name.
func (app *Application) RunAction(action string) error {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.runAction(action)
}

func (app *Application) runAction(action string) error {
	switch action {
	case config.ActionConfirm:
		app.confirm()
	case config.ActionDelete:
		if app.editor.HasActiveDots() {
			app.editor.ResetDots()
			return nil
		}
		app.deleteLastChar()
	case config.ActionReset:
		if app.editor.HasActiveDots() {
			app.editor.ResetDots()
			return nil
		}
		app.editor.CancelPending()
	case config.ActionNewline:
		app.editor.AddNewline()
	case config.ActionClear:
		app.editor.ClearAll()
		app.notify("Cleared")
	case config.ActionCycleLayout:
		app.cycleLayout()
	case config.ActionCycleMode:
		app.cycleMode()
	case config.ActionCycleCapital:
		if app.editor.CycleCapital() {
			app.notify("Capital: %s", app.editor.Status().Capital)
		}
	case config.ActionCopyBraille:
		app.copy("braille", app.editor.Braille())
	case config.ActionCopyText:
		app.copy("text", app.editor.Text())
	case config.ActionQuit:
		return ErrQuit
	default:
		return NewOperationError("run action", action, errUnknownAction)
	}
	return nil
}

var errUnknownAction = errors.New("unknown action")

func (app *Application) confirm() {
	res := app.editor.ConfirmChar()
	app.metrics.RecordCells(utf8.RuneCountInString(res.Braille))
	if res.Kind == editor.ResultIndicator {
		app.metrics.RecordIndicator()
		app.notify("Indicator: %s", res.Sequence.Name)
	}
}

func (app *Application) deleteLastChar() {
	if app.editor.DeleteLastChar() {
		app.metrics.RecordDeletion()
	}
}

func (app *Application) cycleLayout() {
	next, err := app.layouts.Next(app.layout.ID)
	if err != nil {
		app.logger.Warn("cycle layout: %v", err)
		return
	}
	app.layout = next
	if err := app.prefs.Set(prefs.KeyLayout, next.ID); err != nil {
		app.logger.Warn("%v", NewOperationError("save preference", prefs.KeyLayout, err))
	}
	app.notify("Layout: %s", next.Name)
}

func (app *Application) cycleMode() {
	if app.modes.Len() <= 1 {
		app.notify("Only one mode available")
		return
	}
	m, err := app.modes.CycleToNext()
	if err != nil {
		app.notifyError("Mode switch failed: %v", err)
		return
	}
	app.notify("Mode: %s", m.Info().Name)
}

func (app *Application) copy(target, text string) {
	if text == "" {
		app.notify("%s", ErrNothingToCopy)
		return
	}
	if err := app.clipboard.WriteAll(text); err != nil {
		opErr := NewOperationError("copy", target, err)
		app.logger.Error("%v", opErr)
		app.notifyError("Copy failed: %v", err)
		return
	}
	app.metrics.RecordCopy()
	app.notify("Copied %s (%d characters)", target, utf8.RuneCountInString(text))
}

// ApplyConfig applies a reloaded configuration. Key bindings, custom
// layouts, the deletion recompute policy and the log level take effect
// immediately. The active mode and layout are left alone.
func (app *Application) ApplyConfig(cfg *config.Config) error {
	bindings, err := bindingsFrom(cfg)
	if err != nil {
		return NewOperationError("apply config", "keys", err)
	}

	app.mu.Lock()
	defer app.mu.Unlock()

	app.config = cfg
	app.bindings = bindings
	app.addCustomLayouts(cfg)
	if l, err := app.layouts.Get(app.layout.ID); err == nil {
		app.layout = l
	}

	app.recompute = parseRecompute(cfg.Editor.Recompute)
	app.editor.SetRecompute(app.recompute)
	app.logger.SetLevel(logging.ParseLevel(cfg.Logging.Level))

	app.logger.Info("configuration reloaded from %s", cfg.Source)
	app.notify("Configuration reloaded")
	return nil
}
