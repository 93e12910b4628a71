package app

import "github.com/atotto/clipboard"

// Clipboard receives copied text.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the operating system clipboard. It needs
// xclip, xsel or wl-copy on Linux.
type SystemClipboard struct{}

// WriteAll copies text to the system clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}

// Available reports whether a system clipboard utility was found.
func (SystemClipboard) Available() bool {
	return !clipboard.Unsupported
}
