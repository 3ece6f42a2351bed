package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/justinvassantachart/cs111-interactive-sub002/internal/search"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// RenderResults formats a ranked result list. When styled is false the output
// is plain text suitable for piping.
func RenderResults(results []search.Result, styled bool) string {
	if len(results) == 0 {
		return "No results.\n"
	}

	var b strings.Builder
	st := DefaultStyles()

	for i, r := range results {
		title := r.LectureTitle
		if r.SectionTitle != "" {
			title += " › " + r.SectionTitle
		}

		if styled {
			fmt.Fprintf(&b, "%s %s %s\n",
				st.Score.Render(fmt.Sprintf("%2d.", i+1)),
				st.Title.Render(title),
				st.Kind.Render("["+string(r.Kind)+"]"))
			if r.Preview != "" {
				fmt.Fprintf(&b, "    %s\n", st.Preview.Render(r.Preview))
			}
			fmt.Fprintf(&b, "    %s\n",
				st.Route.Render(fmt.Sprintf("%s  score=%d", r.Route, r.Score)))
		} else {
			fmt.Fprintf(&b, "%2d. %s [%s]\n", i+1, title, r.Kind)
			if r.Preview != "" {
				fmt.Fprintf(&b, "    %s\n", r.Preview)
			}
			fmt.Fprintf(&b, "    %s  score=%d\n", r.Route, r.Score)
		}
	}
	return b.String()
}
