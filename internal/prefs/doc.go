// Package prefs persists user preferences such as the last selected braille
// mode and keyboard layout.
//
// Two stores are provided: Bolt keeps values in a bbolt database file and
// Memory keeps them in process, for tests and for sessions run without a
// state file.
package prefs
