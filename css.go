package xcall

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ParseStyle converts a style descriptor such as
// "background: #8c7ae6; color: #2f3640; padding: 3px" into a lipgloss style
// created by r. Unknown properties are ignored.
func ParseStyle(r *lipgloss.Renderer, descriptor string) lipgloss.Style {
	st := r.NewStyle()
	for _, decl := range strings.Split(descriptor, ";") {
		prop, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		val = strings.TrimSpace(val)
		if val == "" {
			continue
		}
		switch prop {
		case "background", "background-color":
			st = st.Background(lipgloss.Color(val))
		case "color":
			st = st.Foreground(lipgloss.Color(val))
		case "padding":
			if n := paddingCells(val); n > 0 {
				st = st.Padding(0, n)
			}
		case "font-weight":
			if val == "bold" || val == "bolder" {
				st = st.Bold(true)
			}
		case "font-style":
			if val == "italic" {
				st = st.Italic(true)
			}
		case "text-decoration":
			if strings.Contains(val, "underline") {
				st = st.Underline(true)
			}
			if strings.Contains(val, "line-through") {
				st = st.Strikethrough(true)
			}
		}
	}
	return st
}

// paddingCells maps a CSS length onto terminal cells: any positive length
// becomes at least one cell, then one cell per 8px.
func paddingCells(val string) int {
	first := strings.Fields(val)[0]
	first = strings.TrimSuffix(first, "px")
	n, err := strconv.Atoi(first)
	if err != nil || n <= 0 {
		return 0
	}
	if cells := n / 8; cells > 1 {
		return cells
	}
	return 1
}
