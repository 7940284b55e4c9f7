package views

import (
	"strings"

	"github.com/hy4ri/multiswitch/internal/tui/styles"
)

// header renders an example's title and description.
func header(title, desc string) string {
	return styles.Title.Render(title) + "\n" + styles.Description.Render(desc) + "\n"
}

// actionsLine renders key hints under an example.
func actionsLine(actions [][]string) string {
	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		parts = append(parts, styles.HelpKey.Render(a[0])+" "+styles.HelpDesc.Render(a[1]))
	}
	return strings.Join(parts, styles.HelpDesc.Render(" • "))
}
