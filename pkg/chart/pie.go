package chart

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

const (
	chartWidth  = 600
	chartHeight = 400
	centerX     = 200
	centerY     = 200
	radius      = 120
)

// Fixed palette, cycled by category order
var sliceColors = []string{"#3b82f6", "#6366f1", "#10b981", "#f59e0b", "#ef4444", "#8b5cf6"}

var camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)

// HumanizeCategory splits camelCase distribution keys into readable words:
// "stakingRewards" -> "staking Rewards". The legend and the document renderers
// share it so labels stay consistent across outputs.
func HumanizeCategory(key string) string {
	return strings.TrimSpace(camelBoundary.ReplaceAllString(key, "$1 $2"))
}

// TokenDistributionChart rasterizes a distribution mapping into a pie chart
// with a side legend and returns it as a PNG data URI, ready to embed in an
// <img> tag. Slices start at 12 o'clock and proceed clockwise; categories are
// drawn in lexicographic key order so the output is a pure function of the
// mapping. Identical input yields byte-identical output.
func TokenDistributionChart(distribution map[string]float64, tokenSymbol string) (string, error) {
	if len(distribution) == 0 {
		return "", fmt.Errorf("empty distribution")
	}

	keys := make([]string, 0, len(distribution))
	for k := range distribution {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var total float64
	for _, k := range keys {
		total += distribution[k]
	}
	if total <= 0 {
		return "", fmt.Errorf("distribution total must be positive")
	}

	dc := gg.NewContext(chartWidth, chartHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	// Pie slices, starting from the top
	currentAngle := -math.Pi / 2
	for i, k := range keys {
		sliceAngle := (distribution[k] / total) * 2 * math.Pi

		dc.MoveTo(centerX, centerY)
		dc.DrawArc(centerX, centerY, radius, currentAngle, currentAngle+sliceAngle)
		dc.ClosePath()
		dc.SetHexColor(sliceColors[i%len(sliceColors)])
		dc.FillPreserve()
		dc.SetRGB(1, 1, 1)
		dc.SetLineWidth(2)
		dc.Stroke()

		currentAngle += sliceAngle
	}

	// Legend
	legendY := 50.0
	for i, k := range keys {
		dc.SetHexColor(sliceColors[i%len(sliceColors)])
		dc.DrawRectangle(420, legendY-10, 15, 15)
		dc.Fill()

		dc.SetRGB(0, 0, 0)
		label := HumanizeCategory(k)
		dc.DrawString(fmt.Sprintf("%s: %s%%", label, FormatPercent(distribution[k])), 445, legendY+2)
		legendY += 25
	}

	// Title
	dc.SetRGB(0, 0, 0)
	dc.DrawString(fmt.Sprintf("%s Token Distribution", tokenSymbol), 150, 30)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return "", fmt.Errorf("encode chart: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// FormatPercent renders whole percentages without a decimal point: 20 -> "20",
// 12.5 -> "12.5". Three decimals cover the distribution tolerance so the
// legend and the document breakdowns print the same value.
func FormatPercent(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int64(v))
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", v), "0"), ".")
}
