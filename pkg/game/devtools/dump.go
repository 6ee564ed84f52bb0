// Package devtools provides developer tools for inspecting content outside
// the game window.
package devtools

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"golang.org/x/term"

	"signalstation/pkg/game/content"
)

var (
	styleTitle  = color.Style{color.FgCyan, color.OpBold}
	styleID     = color.Style{color.FgGray}
	styleLink   = color.Style{color.FgBlue, color.OpUnderscore}
	styleSubtle = color.Style{color.FgGray, color.OpBold}
)

// terminalWidth returns the current terminal width, or 80 when stdout is not
// a terminal (piped output).
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w < 40 {
		return 80
	}
	return w
}

// wrap breaks a line at word boundaries to fit width, indenting continuation
// lines to hang under the bullet text.
func wrap(s string, width int, indent string) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = indent + word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}

// DumpContent prints every section of the document in reading order, the way
// a player would encounter it station by station.
func DumpContent(w io.Writer, store *content.Store) {
	width := terminalWidth()

	for i, sec := range store.Sections() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s %s\n", styleTitle.Sprint(sec.Title), styleID.Sprintf("(%s)", sec.ID))

		for _, bullet := range sec.Bullets {
			for j, line := range wrap(bullet, width-4, "") {
				prefix := "  • "
				if j > 0 {
					prefix = "    "
				}
				fmt.Fprintf(w, "%s%s\n", prefix, line)
			}
		}

		if sec.Link != nil {
			fmt.Fprintf(w, "  %s %s\n",
				styleSubtle.Sprint(sec.Link.Label+":"),
				styleLink.Sprint(sec.Link.URL))
		}
	}
}
