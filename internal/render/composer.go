package render

import (
	"time"

	"github.com/modfolio/modfolio/internal/stats"
	"github.com/modfolio/modfolio/internal/svg"
)

const (
	cardWidth       = 450
	textColor       = "#c9d1d9"
	borderColor     = "#E4E2E2"
	defaultFamily   = "Inter, sans-serif"
	footerTimestamp = "Jan 2, 2006, 03:04 PM"
)

// Composer 把规范化记录转成 SVG 文档树。零值可用：
// 缺省使用 HeuristicMeasurer 与 time.Now。
type Composer struct {
	Measurer    TextMeasurer
	Now         func() time.Time
	Version     string
	Attribution string
	FontFamily  string
}

type theme struct {
	accent     string
	background string
	text       string
	border     string
}

func (c *Composer) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Composer) measurer() TextMeasurer {
	if c.Measurer != nil {
		return c.Measurer
	}
	return HeuristicMeasurer{}
}

func (c *Composer) family() string {
	if c.FontFamily != "" {
		return c.FontFamily
	}
	return defaultFamily
}

func (c *Composer) text(x, y float64, content string, size float64, weight int, fill string) *svg.Text {
	return &svg.Text{X: x, Y: y, Content: content, FontSize: size, Weight: weight, Fill: fill, Family: c.family()}
}

// layout 汇总按实体类型变化的布局参数。
type layout struct {
	circleImage bool
	entityIcon  string
	listKind    stats.ItemKind
}

// layoutFor 是唯一按实体类型分支的位置。
func layoutFor(kind stats.EntityKind) layout {
	switch kind {
	case stats.KindProject:
		return layout{circleImage: false, entityIcon: "box", listKind: stats.ItemVersion}
	case stats.KindUser:
		return layout{circleImage: true, entityIcon: "user", listKind: stats.ItemProject}
	case stats.KindOrganization:
		return layout{circleImage: true, entityIcon: "building", listKind: stats.ItemProject}
	case stats.KindCollection:
		return layout{circleImage: false, entityIcon: "collection", listKind: stats.ItemProject}
	default:
		return layout{entityIcon: "box", listKind: stats.ItemProject}
	}
}

// frame 创建带圆角裁剪与描边边框的画布，返回承载内容的根分组。
func frame(doc *svg.Document, clipID string, t theme) *svg.Group {
	clip := doc.AddClip(clipID, &svg.Rect{W: doc.Width, H: doc.Height, RX: 4.5})
	root := &svg.Group{ClipPath: clip}
	root.Children = append(root.Children, &svg.Rect{
		X: 0.5, Y: 0.5, W: doc.Width - 1, H: doc.Height - 1, RX: 4.5,
		Fill: t.background, Stroke: t.border,
	})
	doc.Add(root)
	return root
}

// footer 绘制左下角版本与时间、缓存图标和右下角署名。
func (c *Composer) footer(height float64, color string, fromCache bool) []svg.Node {
	x := 15.0
	if fromCache {
		x = 30
	}
	info := c.text(x, height-5, "v"+c.Version+" • "+c.now().Format(footerTimestamp), 10, 0, color)
	info.Opacity = 0.6
	nodes := []svg.Node{info}

	if fromCache {
		nodes = append(nodes, &svg.Group{
			Opacity:  0.6,
			Children: []svg.Node{icon("database-zap", color, 15, height-15, 12, 12)},
		})
	}

	if c.Attribution != "" {
		attr := c.text(435, height-5, c.Attribution, 10, 0, color)
		attr.Anchor = "end"
		attr.Opacity = 0.6
		nodes = append(nodes, attr)
	}
	return nodes
}

func sparklinePaths(line Sparkline, accent string) []svg.Node {
	return []svg.Node{
		&svg.Path{D: line.Stroke, Stroke: accent, StrokeWidth: 2, Opacity: 0.3, Round: true},
		&svg.Path{D: line.Fill, Fill: accent, Opacity: 0.05},
	}
}
