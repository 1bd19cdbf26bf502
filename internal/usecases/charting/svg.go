package charting

import (
	"fmt"
	"html"
	"strings"
)

// Paleta do desenho; cores fixas para o documento não depender de folha de
// estilo externa.
const (
	colorBackground = "#ffffff"
	colorGridLine   = "#e0e0e0"
	colorWeekend    = "#f5f5f5"
	colorHeaderText = "#424242"
	colorBarText    = "#ffffff"
	colorToday      = "#e53935"
)

// RenderSVG serializa a geometria como um documento SVG autocontido, com
// largura e altura explícitas e a direção do texto da localidade ativa.
func RenderSVG(layout *Layout) string {
	var b strings.Builder

	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" direction="%s" font-family="sans-serif" font-size="12">`,
		layout.Width, layout.Height, layout.Width, layout.Height, layout.Locale.Direction(),
	)
	b.WriteString("\n")

	fmt.Fprintf(&b, `<rect x="0" y="0" width="%d" height="%d" fill="%s"/>`, layout.Width, layout.Height, colorBackground)
	b.WriteString("\n")

	// Sombreamento de fim de semana antes das linhas de grade, para as linhas
	// ficarem visíveis por cima.
	for _, day := range layout.Days {
		if !day.Weekend {
			continue
		}
		fmt.Fprintf(&b, `<rect x="%d" y="0" width="%d" height="%d" fill="%s"/>`, day.X, pxPerDay, layout.Height, colorWeekend)
		b.WriteString("\n")
	}

	for _, day := range layout.Days {
		fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="1"/>`,
			day.X, headerHeight, day.X, layout.Height, colorGridLine)
		b.WriteString("\n")
	}

	for _, month := range layout.Months {
		fmt.Fprintf(&b, `<text x="%d" y="%d" text-anchor="middle" fill="%s" font-weight="bold">%s</text>`,
			month.X+month.Width/2, headerHeight/2, colorHeaderText, html.EscapeString(month.Label))
		b.WriteString("\n")
	}

	for _, task := range layout.Tasks {
		fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" rx="%d" fill="%s"><title>%s</title></rect>`,
			task.X, task.Y, task.Width, barHeight, barRadius, task.Color, html.EscapeString(task.Title))
		b.WriteString("\n")

		if task.Label != "" {
			fmt.Fprintf(&b, `<text x="%d" y="%d" fill="%s">%s</text>`,
				task.X+4, task.Y+barHeight-6, colorBarText, html.EscapeString(task.Label))
			b.WriteString("\n")
		}
	}

	if layout.Today != nil {
		fmt.Fprintf(&b, `<line x1="%d" y1="0" x2="%d" y2="%d" stroke="%s" stroke-width="2" stroke-dasharray="4 2"/>`,
			layout.Today.X, layout.Today.X, layout.Height, colorToday)
		b.WriteString("\n")
		fmt.Fprintf(&b, `<text x="%d" y="%d" fill="%s">%s</text>`,
			layout.Today.X+4, headerHeight-6, colorToday, html.EscapeString(layout.Today.Label))
		b.WriteString("\n")
	}

	b.WriteString("</svg>")
	return b.String()
}
