package render

import (
	"errors"
	"fmt"

	"github.com/modfolio/modfolio/internal/platform"
	"github.com/modfolio/modfolio/internal/stats"
	"github.com/modfolio/modfolio/internal/svg"
)

const (
	badgeIconCell   = 30
	badgePadding    = 10
	badgeHeight     = 30
	badgeIconSize   = 18
	badgeLabelColor = "#8b949e"
	errorTextColor  = "#f38ba8"
)

// ErrUnknownBadge 表示平台/实体类型不支持该徽章。
var ErrUnknownBadge = errors.New("unknown badge")

// Badge 渲染单项统计徽章。
func (c *Composer) Badge(rec *stats.Record, pres platform.Presentation, stat string, opts Options) (*svg.Document, error) {
	spec, ok := pres.Badge(rec.Kind, stat)
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s/%s", ErrUnknownBadge, pres.Key, rec.Kind, stat)
	}
	opts = opts.Normalize(pres.DefaultColor)
	return c.badge(spec.Label, FormatStat(rec.Aggregates, spec), pres, opts, opts.AccentColor), nil
}

// ErrorBadge 渲染 label 为 error 的徽章。
func (c *Composer) ErrorBadge(message string, pres platform.Presentation) *svg.Document {
	opts := DefaultOptions().Normalize(pres.DefaultColor)
	return c.badge("error", message, pres, opts, errorTextColor)
}

func (c *Composer) badge(label, value string, pres platform.Presentation, opts Options, valueColor string) *svg.Document {
	m := c.measurer()
	labelWidth := m.Measure(label, 14, 500) + badgePadding*2
	valueWidth := m.Measure(value, 16, 700) + badgePadding*2
	width := badgeIconCell + labelWidth + valueWidth

	doc := &svg.Document{Width: width, Height: badgeHeight}
	root := frame(doc, "badge_clip", theme{background: opts.BackgroundColor, border: borderColor})
	root.Children = append(root.Children,
		&svg.Line{X1: badgeIconCell, Y1: 1, X2: badgeIconCell, Y2: badgeHeight - 1, Stroke: borderColor, StrokeWidth: 1},
		&svg.Line{X1: badgeIconCell + labelWidth, Y1: 1, X2: badgeIconCell + labelWidth, Y2: badgeHeight - 1, Stroke: borderColor, StrokeWidth: 1},
	)

	offset := float64(badgeIconCell-badgeIconSize) / 2
	doc.Add(&svg.Icon{
		X: offset, Y: float64(badgeHeight-badgeIconSize) / 2, W: badgeIconSize, H: badgeIconSize,
		ViewBox: pres.IconViewBox,
		Body:    IconBody(pres.Icon, opts.AccentColor),
	})

	labelText := c.text(badgeIconCell+labelWidth/2, 20, label, 14, 500, badgeLabelColor)
	labelText.Anchor = "middle"
	valueText := c.text(badgeIconCell+labelWidth+valueWidth/2, 21, value, 16, 700, valueColor)
	valueText.Anchor = "middle"
	valueText.LetterSpacing = -1
	doc.Add(labelText, valueText)
	return doc
}
