package render

import (
	"math"
	"strings"
)

// TextMeasurer 估算文本渲染宽度（像素）。
type TextMeasurer interface {
	Measure(text string, size float64, weight int) float64
}

const (
	narrowGlyphs = "iljtIrf1 "
	wideGlyphs   = "mwWM0"
)

// HeuristicMeasurer 按窄/宽/普通三档字符系数估算宽度，不依赖字体文件。
type HeuristicMeasurer struct{}

// Measure 忽略字重，结果向上取整。
func (HeuristicMeasurer) Measure(text string, size float64, _ int) float64 {
	var width float64
	for _, r := range text {
		switch {
		case strings.ContainsRune(narrowGlyphs, r):
			width += size * 0.3
		case strings.ContainsRune(wideGlyphs, r):
			width += size * 0.75
		default:
			width += size * 0.55
		}
	}
	return math.Ceil(width)
}
