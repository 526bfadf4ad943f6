package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/mecheng-tools/goshaft/internal/model"
)

// plotHeight is the terminal height of a rendered diagram in rows.
const plotHeight = 10

// PlotSeries renders one diagram array as a terminal line chart.
func PlotSeries(caption string, data []float64) string {
	if len(data) == 0 {
		return fmt.Sprintf("  %s: no data\n", caption)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(70),
		asciigraph.Caption(caption),
	) + "\n"
}

// DrawShaftProfile renders a side view of the stepped shaft: a symmetric
// profile about the axis with bearing and element markers underneath.
func DrawShaftProfile(s *model.Shaft) string {
	segments := s.Segments()
	if len(segments) == 0 {
		return "  (empty shaft)\n"
	}

	const cols = 64
	const halfRows = 5

	length := s.TotalLength()
	maxD := 0.0
	for _, seg := range segments {
		if seg.Diameter() > maxD {
			maxD = seg.Diameter()
		}
	}
	if length == 0 || maxD == 0 {
		return "  (degenerate shaft)\n"
	}

	origin := s.Nodes[0].Position

	// Local radius per column, scaled to halfRows.
	radius := make([]int, cols)
	for c := 0; c < cols; c++ {
		pos := origin + length*float64(c)/float64(cols-1)
		d := s.DiameterAt(pos)
		if d == 0 && c == cols-1 {
			d = segments[len(segments)-1].Diameter()
		}
		radius[c] = int(d / maxD * halfRows)
		if d > 0 && radius[c] == 0 {
			radius[c] = 1
		}
	}

	var sb strings.Builder
	sb.WriteString("\n  SHAFT PROFILE\n")
	sb.WriteString("  ─────────────\n")
	for r := halfRows; r >= -halfRows; r-- {
		sb.WriteString("  ")
		for c := 0; c < cols; c++ {
			switch {
			case r == 0:
				sb.WriteString("─") // axis
			case abs(r) <= radius[c]:
				sb.WriteString("█")
			default:
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}

	// Marker row for mounted elements.
	markers := []rune(strings.Repeat(" ", cols))
	for _, n := range s.Nodes {
		if n.Element == nil {
			continue
		}
		c := int((n.Position - origin) / length * float64(cols-1))
		switch n.Element.Kind {
		case model.KindBearing:
			markers[c] = '▲'
		case model.KindSpurGear:
			markers[c] = 'G'
		case model.KindPulley:
			markers[c] = 'P'
		}
	}
	sb.WriteString("  " + string(markers) + "\n")
	sb.WriteString("  ▲ = bearing   G = gear   P = pulley\n\n")

	// Segment table.
	for i, seg := range segments {
		sb.WriteString(fmt.Sprintf("  Segment %d: %.0f–%.0f mm  ø%.0f mm\n",
			i+1, seg.Start.Position, seg.End.Position, seg.Diameter()))
	}
	return sb.String()
}

// SummaryBox frames a titled list of result lines.
func SummaryBox(title string, lines []string) string {
	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	var sb strings.Builder
	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))
	return sb.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
