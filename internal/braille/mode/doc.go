// Package mode defines braille conventions ("modes") and the registry that
// selects between them.
//
// A Mode bundles the tables for one convention (letters, digits,
// punctuation, indicators) with a small state machine that tracks number,
// capital and typeform indicators from cell to cell. Modes never hold
// document state; the editor threads a State value through the mode's
// transition functions and keeps the result.
//
// # Two-cell indicators
//
// Some cells can start a two-cell indicator. The editor holds such a cell
// back until the next cell arrives, then asks ResolveSequence whether the
// pair is registered. If it is not, the held cell is committed on its own
// and the new cell is processed normally, so nothing is ever dropped.
//
// # Registry
//
// The Registry keeps modes in registration order, tracks the active one,
// persists the selection through a PreferenceStore and notifies listeners
// synchronously after every switch:
//
//	reg := mode.NewRegistry(mode.WithStore(store))
//	_ = reg.Register(ueb.NewGrade1())
//	reg.OnChange(func(ev mode.ChangeEvent) error {
//		// rebuild the editor for ev.Current
//		return nil
//	})
//	_ = reg.SetMode(reg.LoadPreference(ueb.ID))
//
// Switching modes does not touch any open editor. State is specific to a
// mode, so callers build a new editor for the new mode.
package mode
