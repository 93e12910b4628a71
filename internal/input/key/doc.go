// Package key provides key event types and key specification parsing.
//
// Key specifications can be written in several formats:
//
//   - Simple keys: "f", ";", "Enter", "Esc", "Space"
//   - With modifiers: "Ctrl+L", "Alt+Enter"
//   - Vim-style: "<C-l>", "<A-CR>"
//
// Parsed events are normalized so that an event read from the terminal
// compares equal to the event parsed from its specification.
package key
