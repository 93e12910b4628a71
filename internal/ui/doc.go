// Package ui is the terminal front end. It converts tcell key events into
// key.Event values for the application and draws app.View snapshots.
//
// Frame is independent of the terminal, so layout can be tested without a
// screen.
package ui
