// Package export renders recorded runs to SVG for use outside the
// terminal.
package export

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const svgBackground = "#0a0a0a"

// SeriesSVG renders each recorded column as a polyline over time, one
// stroke color per column.
func SeriesSVG(times []float64, rows [][]float64, labels []string, width, height int) string {
	if len(rows) < 2 || len(rows[0]) == 0 {
		return ""
	}
	cols := len(rows[0])

	minY, maxY := rows[0][0], rows[0][0]
	for _, row := range rows {
		for _, v := range row {
			if v < minY {
				minY = v
			}
			if v > maxY {
				maxY = v
			}
		}
	}
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	rangeY *= 1.2

	minT := times[0]
	rangeT := times[len(times)-1] - minT
	if rangeT == 0 {
		rangeT = 1
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, svgBackground))

	for col := 0; col < cols; col++ {
		stroke := colorful.Hsv(float64(col)/float64(cols)*300.0, 0.7, 0.95).Hex()

		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, stroke))
		for i, row := range rows {
			x := (times[i] - minT) / rangeT * float64(width)
			y := float64(height) - (row[col]-minY)/rangeY*float64(height)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")

		if col < len(labels) {
			sb.WriteString(fmt.Sprintf(`<text x="8" y="%d" fill="%s" font-family="monospace" font-size="12">%s</text>
`, 16+col*16, stroke, labels[col]))
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// PathSVG renders an (x, y) trajectory, such as a projectile's
// precomputed flight path, as a single polyline.
func PathSVG(xs, ys []float64, width, height int, stroke string) string {
	if len(xs) < 2 || len(xs) != len(ys) {
		return ""
	}

	minX, maxX := xs[0], xs[0]
	minY, maxY := ys[0], ys[0]
	for i := range xs {
		if xs[i] < minX {
			minX = xs[i]
		}
		if xs[i] > maxX {
			maxX = xs[i]
		}
		if ys[i] < minY {
			minY = ys[i]
		}
		if ys[i] > maxY {
			maxY = ys[i]
		}
	}
	rangeX, rangeY := maxX-minX, maxY-minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`, width, height, width, height, svgBackground, stroke))

	for i := range xs {
		x := (xs[i] - minX) / rangeX * float64(width)
		y := float64(height) - (ys[i]-minY)/rangeY*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString("\"/>\n</svg>\n")
	return sb.String()
}
