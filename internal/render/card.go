package render

import (
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/modfolio/modfolio/internal/platform"
	"github.com/modfolio/modfolio/internal/stats"
	"github.com/modfolio/modfolio/internal/svg"
)

var statColumns = [3]float64{15, 155, 270}

const (
	cardBaseHeight = 130
	listHeader     = 20
	rowHeight      = 50
	rowWidth       = 420
	titleLimit     = 22
	rowNameLimit   = 18
	rowSparkWidth  = rowWidth * 0.6
	rowSparkHeight = 40 * 0.75
	rowSparkOffset = 15 + rowWidth*0.2
)

// CardHeight 返回卡片高度：无列表时为 130，否则 150 + n*50。
func CardHeight(rows int) float64 {
	if rows <= 0 {
		return cardBaseHeight
	}
	return cardBaseHeight + listHeader + float64(rows*rowHeight)
}

// VisibleRows 返回实际渲染的列表行数。
func VisibleRows(rec *stats.Record, opts Options) int {
	if !opts.ShowList {
		return 0
	}
	items, ok := rec.Related.Get()
	if !ok {
		return 0
	}
	return min(len(items), opts.MaxItems)
}

// Card 渲染统计卡片。opts 应已经过 Normalize。
func (c *Composer) Card(rec *stats.Record, pres platform.Presentation, opts Options) *svg.Document {
	opts = opts.Normalize(pres.DefaultColor)
	t := theme{accent: opts.AccentColor, background: opts.BackgroundColor, text: textColor, border: borderColor}
	lay := layoutFor(rec.Kind)
	now := c.now()

	rows := VisibleRows(rec, opts)
	height := CardHeight(rows)
	doc := &svg.Document{Width: cardWidth, Height: height}
	root := frame(doc, "outer_rectangle_summary", t)

	if opts.ShowSparklines {
		if series, ok := rec.Activity.Get(); ok {
			if line := GenerateSparkline(series, now, 0, 0); !line.Empty() {
				root.Children = append(root.Children, &svg.Group{
					Transform: svg.Transform{TX: 15},
					Children:  sparklinePaths(line, t.accent),
				})
			}
		}
	}

	root.Children = append(root.Children, c.header(rec, pres, lay, t)...)
	root.Children = append(root.Children, c.entityImage(doc, rec, lay, t))
	root.Children = append(root.Children, c.statGrid(rec, pres, t)...)
	root.Children = append(root.Children, &svg.Line{X1: 15, Y1: 110, X2: 435, Y2: 110, Stroke: t.border, StrokeWidth: 1})

	if rows > 0 {
		items, _ := rec.Related.Get()
		items = items[:rows]
		heading := c.text(15, 130, pres.Section(rec.Kind), 14, 600, t.text)
		root.Children = append(root.Children, heading)
		peak := 0.0
		for _, item := range items {
			if item.Downloads > peak {
				peak = item.Downloads
			}
		}
		for i, item := range items {
			if lay.listKind == stats.ItemVersion || item.Kind == stats.ItemVersion {
				root.Children = append(root.Children, c.versionRow(doc, item, i, peak, t, opts, now))
				continue
			}
			root.Children = append(root.Children, c.projectRow(doc, item, i, peak, t, opts, now))
		}
	}

	root.Children = append(root.Children, c.footer(height, t.text, opts.FromCache)...)
	return doc
}

func (c *Composer) header(rec *stats.Record, pres platform.Presentation, lay layout, t theme) []svg.Node {
	entityIcon := lay.entityIcon
	if rec.Kind == stats.KindProject && rec.Entity.Type != "" {
		entityIcon = ProjectTypeIcon(rec.Entity.Type)
	}
	title := rec.Entity.Name
	if title == "" {
		title = "Unknown"
	}
	return []svg.Node{
		&svg.Icon{X: 15, Y: 15, W: 24, H: 24, ViewBox: pres.IconViewBox, Body: IconBody(pres.Icon, t.accent)},
		icon("chevron-right", t.text, 41, 15, 16, 24),
		icon(entityIcon, t.text, 58, 15, 24, 24),
		c.text(87, 35, Truncate(title, titleLimit), 20, 700, t.text),
	}
}

// entityImage 绘制头像或项目图标；图片不可用时画同形状的占位块。
func (c *Composer) entityImage(doc *svg.Document, rec *stats.Record, lay layout, t theme) svg.Node {
	href, ok := rec.Entity.Icon.Get()
	if lay.circleImage {
		const cx, cy, r = 400, 60, 35
		if !ok || href == "" {
			return &svg.Circle{CX: cx, CY: cy, R: r, Fill: t.border}
		}
		clip := doc.AddClip("profile-clip", &svg.Circle{CX: cx, CY: cy, R: r})
		return &svg.Image{X: cx - r, Y: cy - r, W: r * 2, H: r * 2, Href: href, ClipPath: clip}
	}

	const x, y, size, rx = 365, 25, 70, 14
	if !ok || href == "" {
		return &svg.Rect{X: x, Y: y, W: size, H: size, RX: rx, Fill: t.border}
	}
	clip := doc.AddClip("project-image-clip", &svg.Rect{X: x, Y: y, W: size, H: size, RX: rx})
	return &svg.Image{X: x, Y: y, W: size, H: size, Href: href, ClipPath: clip}
}

func (c *Composer) statGrid(rec *stats.Record, pres platform.Presentation, t theme) []svg.Node {
	slots, ok := pres.StatSlots(rec.Kind)
	if !ok {
		return nil
	}
	nodes := make([]svg.Node, 0, len(slots))
	for i, slot := range slots {
		if slot.Label == "" {
			continue
		}
		nodes = append(nodes, &svg.Group{
			Transform: svg.Transform{TX: statColumns[i], TY: 70},
			Children: []svg.Node{
				c.text(0, 0, FormatStat(rec.Aggregates, slot), 26, 700, t.accent),
				c.text(0, 20, slot.Label, 12, 0, t.text),
			},
		})
	}
	return nodes
}

func rowY(i int) float64 { return float64(160 + i*rowHeight) }

func barWidth(downloads, peak float64) float64 {
	if peak <= 0 {
		return 0
	}
	return downloads / peak * rowWidth
}

func (c *Composer) rowFrame(doc *svg.Document, prefix string, i int, t theme) (string, *svg.Rect) {
	y := rowY(i)
	clip := doc.AddClip(prefix+"-clip-"+strconv.Itoa(i), &svg.Rect{X: 15, Y: y - 18, W: rowWidth, H: 40, RX: 6})
	border := &svg.Rect{X: 15, Y: y - 18, W: rowWidth, H: 40, RX: 6, Fill: "none", Stroke: t.border, StrokeWidth: 1}
	return clip, border
}

func (c *Composer) loaderIcons(loaders []string, x0, y float64) []svg.Node {
	var nodes []svg.Node
	for i, loader := range loaders {
		name := strings.ToLower(loader)
		if !HasIcon(name) {
			continue
		}
		nodes = append(nodes, icon(name, LoaderColor(name), x0+float64(i*18), y+2, 16, 16))
	}
	return nodes
}

func (c *Composer) projectRow(doc *svg.Document, item stats.Item, i int, peak float64, t theme, opts Options, now time.Time) svg.Node {
	y := rowY(i)
	clip, border := c.rowFrame(doc, "project", i, t)
	g := &svg.Group{Children: []svg.Node{border}}

	if opts.ShowSparklines {
		if series, ok := item.Activity.Get(); ok {
			if line := GenerateSparkline(series, now, rowSparkWidth, rowSparkHeight); !line.Empty() {
				g.Children = append(g.Children, &svg.Group{
					ClipPath: clip,
					Children: []svg.Node{&svg.Group{
						Transform: svg.Transform{TX: rowSparkOffset, TY: y - 88},
						Children:  sparklinePaths(line, t.accent),
					}},
				})
			}
		}
	}

	g.Children = append(g.Children, &svg.Rect{X: 15, Y: y - 17.5, W: barWidth(item.Downloads, peak), H: 3, Fill: t.accent, ClipPath: clip})

	if href, ok := item.Icon.Get(); ok && href != "" {
		iconClip := doc.AddClip("project-icon-clip-"+strconv.Itoa(i), &svg.Rect{X: 20, Y: y - 12, W: 28, H: 28, RX: 4})
		g.Children = append(g.Children, &svg.Image{X: 20, Y: y - 12, W: 28, H: 28, Href: href, ClipPath: iconClip})
	} else {
		g.Children = append(g.Children, &svg.Rect{X: 20, Y: y - 12, W: 28, H: 28, RX: 4, Fill: t.border})
	}

	g.Children = append(g.Children, c.text(54, y-2, Truncate(item.Name, rowNameLimit), 13, 600, t.text))
	g.Children = append(g.Children, c.loaderIcons(item.Loaders, 54, y)...)

	downloads := c.text(380, y, FormatNumber(item.Downloads), 11, 0, t.text)
	downloads.Anchor = "end"
	followers := c.text(380, y+18, FormatNumber(item.Followers), 11, 0, t.text)
	followers.Anchor = "end"
	g.Children = append(g.Children,
		downloads,
		icon("download", t.text, 385, y-12, 14, 14),
		followers,
		icon("heart", t.text, 385, y+6, 14, 14),
		icon(ProjectTypeIcon(item.ProjectType), t.text, 405, y-10, 24, 24),
	)
	return g
}

func (c *Composer) versionRow(doc *svg.Document, item stats.Item, i int, peak float64, t theme, opts Options, now time.Time) svg.Node {
	y := rowY(i)
	clip, border := c.rowFrame(doc, "version", i, t)
	g := &svg.Group{Children: []svg.Node{border}}

	g.Children = append(g.Children, &svg.Rect{X: 15, Y: y - 17.5, W: barWidth(item.Downloads, peak), H: 3, Fill: t.accent, ClipPath: clip})
	g.Children = append(g.Children, c.text(20, y-2, Truncate(item.Name, rowNameLimit), 13, 600, t.text))
	g.Children = append(g.Children, c.loaderIcons(item.Loaders, 20, y)...)

	versions := item.GameVersions
	gameText := strings.Join(versions[:min(len(versions), 3)], ", ")
	if len(versions) > 3 {
		gameText += "..."
	}
	g.Children = append(g.Children, c.text(20+float64(len(item.Loaders)*18)+2, y+15, gameText, 12, 0, t.text))

	date := c.text(410, y, formatDate(item.Published, now, opts.RelativeTime), 11, 0, t.text)
	date.Anchor = "end"
	downloads := c.text(410, y+18, FormatNumber(item.Downloads), 11, 0, t.text)
	downloads.Anchor = "end"
	g.Children = append(g.Children,
		date,
		icon("calendar", t.text, 415, y-12, 14, 14),
		downloads,
		icon("download", t.text, 415, y+6, 14, 14),
	)
	return g
}

func formatDate(published, now time.Time, relative bool) string {
	if published.IsZero() {
		return "unknown"
	}
	if relative {
		return humanize.RelTime(published, now, "ago", "from now")
	}
	return published.Format("Jan 2, 2006")
}
