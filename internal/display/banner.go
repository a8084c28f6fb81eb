package display

import (
	"fmt"
	"os"

	"github.com/backmassage/photoclean/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Magenta != "" {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, `       _           _             _
 _ __ | |__   ___ | |_ ___   ___| | ___  __ _ _ __
| '_ \| '_ \ / _ \| __/ _ \ / __| |/ _ \/ _`+"`"+` | '_ \
| |_) | | | | (_) | || (_) | (__| |  __/ (_| | | | |
| .__/|_| |_|\___/ \__\___/ \___|_|\___|\__,_|_| |_|
|_|
`)
	if term.Magenta != "" {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
