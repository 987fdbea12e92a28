package diff

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// Unified returns a unified diff between the current contents of a file and
// what it would contain after a write. It is empty when nothing changes.
func Unified(path, before, after string) string {
	name := filepath.Base(path)
	edits := myers.ComputeEdits(span.URIFromPath(name), before, after)
	if len(edits) == 0 {
		return ""
	}
	return fmt.Sprint(gotextdiff.ToUnified(name, name+" (after)", before, edits))
}

// Preview renders the change to path for the terminal. When styled is false,
// or glamour cannot render, the plain fenced diff is returned.
func Preview(path, before, after string, styled bool) string {
	unified := Unified(path, before, after)
	if unified == "" {
		return ""
	}

	// Wrap in diff code fence for proper syntax highlighting (+ in green, - in red)
	fenced := fmt.Sprintf("```diff\n%s```\n", unified)
	if !styled {
		return fenced
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return fenced
	}

	rendered, err := renderer.Render(fenced)
	if err != nil {
		return fenced
	}

	return rendered
}
