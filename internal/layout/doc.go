// Package layout maps keyboard keys to braille dots.
//
// A Layout binds six keys to dots 1-6. Four layouts are built in; more can
// be added from configuration. Keys are matched without regard to case so
// that Caps Lock does not break typing.
package layout
