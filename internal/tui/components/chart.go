package components

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/saveup/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var blocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 3)
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// ScheduleChart renders cumulative values as vertical bars, one per entry of
// months, with a y axis and month numbers along the x axis. Too small an area
// falls back to a Sparkline.
func ScheduleChart(months []int, values []float64, color lipgloss.Color, width, height int) string {
	if len(values) == 0 || len(months) != len(values) {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(values, color)
	}

	t := theme.Active

	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	step := chartTickStep(maxVal)
	ceiling := math.Ceil(maxVal/step) * step
	intervals := int(math.Round(ceiling / step))
	for intervals > height/2 && intervals > 1 {
		step *= 2
		ceiling = math.Ceil(maxVal/step) * step
		intervals = int(math.Round(ceiling / step))
	}
	rowsPerTick := height / intervals
	if rowsPerTick < 1 {
		rowsPerTick = 1
	}
	chartH := rowsPerTick * intervals

	yLabelW := len(formatChartLabel(ceiling)) + 1
	if yLabelW < 4 {
		yLabelW = 4
	}

	// Bars are 1-3 cells wide with a 1 cell gap; months that do not fit are
	// sampled evenly, always keeping the last one.
	chartW := width - yLabelW - 1
	if fit := (chartW + 1) / 2; len(values) > fit && fit > 1 {
		sampledVals := make([]float64, fit)
		sampledMonths := make([]int, fit)
		for i := range sampledVals {
			src := i * (len(values) - 1) / (fit - 1)
			sampledVals[i] = values[src]
			sampledMonths[i] = months[src]
		}
		values, months = sampledVals, sampledMonths
	}
	n := len(values)
	barW := (chartW + 1) / n
	barW-- // gap
	if barW < 1 {
		barW = 1
	}
	if barW > 3 {
		barW = 3
	}
	axisLen := n*(barW+1) - 1

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for row := chartH; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(chartH)
		rowBottom := ceiling * float64(row-1) / float64(chartH)

		label := ""
		if row%rowsPerTick == 0 {
			label = formatChartLabel(step * float64(row/rowsPerTick))
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		for i, v := range values {
			if i > 0 {
				b.WriteString(space.Render(" "))
			}
			switch {
			case v >= rowTop:
				b.WriteString(barStyle.Render(strings.Repeat("█", barW)))
			case v > rowBottom:
				idx := int((v - rowBottom) / (rowTop - rowBottom) * float64(len(blocks)))
				if idx >= len(blocks) {
					idx = len(blocks) - 1
				}
				b.WriteString(barStyle.Render(strings.Repeat(string(blocks[idx]), barW)))
			default:
				b.WriteString(space.Render(strings.Repeat(" ", barW)))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└" + strings.Repeat("─", axisLen)))
	b.WriteString("\n")
	b.WriteString(space.Render(strings.Repeat(" ", yLabelW+1)))
	b.WriteString(axisStyle.Render(monthAxis(months, barW, axisLen)))

	return b.String()
}

// monthAxis places the first and last month numbers, and the middle one when
// there is room, under their bars.
func monthAxis(months []int, barW, axisLen int) string {
	buf := []byte(strings.Repeat(" ", axisLen))
	put := func(i int) {
		lbl := strconv.Itoa(months[i])
		pos := i * (barW + 1)
		if pos+len(lbl) > axisLen {
			pos = axisLen - len(lbl)
		}
		if pos < 0 {
			return
		}
		copy(buf[pos:], lbl)
	}

	n := len(months)
	put(0)
	if n > 2 && axisLen >= 12 {
		put(n / 2)
	}
	if n > 1 {
		put(n - 1)
	}
	return strings.TrimRight(string(buf), " ")
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func formatChartLabel(v float64) string {
	switch {
	case v >= 1e6:
		return trimZero(fmt.Sprintf("%.1f", v/1e6)) + "M"
	case v >= 1e3:
		return trimZero(fmt.Sprintf("%.1f", v/1e3)) + "k"
	case v >= 1:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

func trimZero(s string) string {
	return strings.TrimSuffix(s, ".0")
}
