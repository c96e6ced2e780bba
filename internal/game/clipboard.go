package game

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

var errNoClipboard = errors.New("no clipboard utility available")

func writeClipboard(s string) error {
	if clipboard.Unsupported {
		return errNoClipboard
	}
	if err := clipboard.WriteAll(s); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}
