package gui

import (
	"fmt"
	"strings"

	"github.com/san-kum/wonders/internal/dynamo"
	"github.com/san-kum/wonders/internal/wonders"
)

const panelWidth = 52

type panelLine struct {
	text     string
	dim      bool
	selected bool
}

// panelLines lays out the info panel: title, category, wrapped text and
// the live parameter values with sel marked.
func panelLines(m wonders.Meta, v wonders.Visualizer, sel int) []panelLine {
	lines := []panelLine{
		{text: m.Title},
		{text: strings.ToUpper(m.Category), dim: true},
		{},
	}
	for _, l := range wrap(m.Description, panelWidth) {
		lines = append(lines, panelLine{text: l})
	}
	lines = append(lines, panelLine{}, panelLine{text: m.Formula})
	for _, l := range wrap(m.Philosophy, panelWidth) {
		lines = append(lines, panelLine{text: l, dim: true})
	}

	cfg, ok := v.(dynamo.Configurable)
	if !ok {
		return lines
	}
	params := cfg.GetParams()
	lines = append(lines, panelLine{})
	for i, name := range wonders.ParamNames(v) {
		prefix := "  "
		if i == sel {
			prefix = "> "
		}
		lines = append(lines, panelLine{
			text:     fmt.Sprintf("%s%-12s %.4g", prefix, name, params[name]),
			selected: i == sel,
		})
	}
	return lines
}

func wrap(s string, width int) []string {
	var out []string
	var cur strings.Builder
	for _, w := range strings.Fields(s) {
		if cur.Len() > 0 && cur.Len()+1+len(w) > width {
			out = append(out, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(w)
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}
