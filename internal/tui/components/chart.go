package components

import (
	"fmt"

	"sirivaram/sirictl/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// chartHeight is the fixed height for sparklines.
const chartHeight = 6

// Sparkline renders a single-series chart with a label header and a
// cur/min/max summary line. Returns a muted placeholder if data is empty.
func Sparkline(label string, data []float64, width int, suffix string) string {
	if len(data) == 0 {
		return styles.MutedText.Render(label + ": no data")
	}

	// Reserve space for Y-axis labels (number + " ┤" ≈ 9 chars).
	plotWidth := width - 9
	if plotWidth < 10 {
		plotWidth = 10
	}

	chart := asciigraph.Plot(data,
		asciigraph.Height(chartHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(asciigraph.DodgerBlue),
		asciigraph.LabelColor(asciigraph.Default),
	)

	latest := data[len(data)-1]
	lo, hi := minMax(data)
	summary := styles.MutedText.Render(
		fmt.Sprintf("  last: %s  min: %s  max: %s",
			formatValue(latest, suffix),
			formatValue(lo, suffix),
			formatValue(hi, suffix),
		),
	)

	header := styles.Label.Render(label)
	return lipgloss.JoinVertical(lipgloss.Left, header, chart, summary)
}

func minMax(data []float64) (lo, hi float64) {
	lo, hi = data[0], data[0]
	for _, v := range data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func formatValue(v float64, suffix string) string {
	return fmt.Sprintf("%.0f%s", v, suffix)
}
