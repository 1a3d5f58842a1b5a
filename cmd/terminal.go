package cmd

import (
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const defaultTerminalWidth = 80

// terminalSize reports the size of the terminal attached to stdout.
// ok is false when stdout is not a terminal.
func terminalSize() (width, height int, ok bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, false
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return 0, 0, false
	}
	return width, height, true
}

func terminalWidth() int {
	if w, _, ok := terminalSize(); ok {
		return w
	}
	return defaultTerminalWidth
}

// colorProfile returns the colour profile for stdout, honouring NO_COLOR and
// CLICOLOR_FORCE. Anything that is not a terminal gets plain glyphs.
func colorProfile() termenv.Profile {
	if _, _, ok := terminalSize(); !ok {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}
