package app

import (
	"github.com/atotto/clipboard"
	"github.com/pkg/errors"
)

// Clipboard receives exported grid text.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the desktop clipboard.
type SystemClipboard struct{}

// WriteAll copies text to the system clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("clipboard not supported on this system")
	}
	return errors.Wrap(clipboard.WriteAll(text), "write clipboard")
}
