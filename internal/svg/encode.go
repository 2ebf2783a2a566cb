package svg

import (
	"bytes"
	"encoding/xml"
	"math"
	"strconv"
)

const namespace = "http://www.w3.org/2000/svg"

type writer struct {
	bytes.Buffer
}

func (w *writer) attr(name, value string) {
	if value == "" {
		return
	}
	w.WriteByte(' ')
	w.WriteString(name)
	w.WriteString(`="`)
	_ = xml.EscapeText(w, []byte(value))
	w.WriteByte('"')
}

func (w *writer) num(name string, v float64) {
	w.WriteByte(' ')
	w.WriteString(name)
	w.WriteString(`="`)
	w.WriteString(Num(v))
	w.WriteByte('"')
}

func (w *writer) opacity(v float64) {
	if v > 0 && v < 1 {
		w.num("opacity", v)
	}
}

// Num 最多保留两位小数，去掉多余的 0。
func Num(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// Markup 将文档编码为独立的 SVG 文本。
func (d *Document) Markup() []byte {
	var w writer
	w.WriteString("<svg")
	w.num("width", d.Width)
	w.num("height", d.Height)
	w.attr("viewBox", "0 0 "+Num(d.Width)+" "+Num(d.Height))
	w.attr("xmlns", namespace)
	w.WriteByte('>')
	if len(d.Defs) > 0 {
		w.WriteString("<defs>")
		for _, c := range d.Defs {
			w.WriteString("<clipPath")
			w.attr("id", c.ID)
			w.WriteByte('>')
			if c.Shape != nil {
				c.Shape.encode(&w)
			}
			w.WriteString("</clipPath>")
		}
		w.WriteString("</defs>")
	}
	for _, n := range d.Children {
		n.encode(&w)
	}
	w.WriteString("</svg>")
	return w.Bytes()
}

func clipRef(id string) string {
	if id == "" {
		return ""
	}
	return "url(#" + id + ")"
}

func (g *Group) encode(w *writer) {
	w.WriteString("<g")
	if t := g.Transform; t.TX != 0 || t.TY != 0 || (t.Scale != 0 && t.Scale != 1) {
		tf := "translate(" + Num(t.TX) + ", " + Num(t.TY) + ")"
		if t.Scale != 0 && t.Scale != 1 {
			tf += " scale(" + strconv.FormatFloat(t.Scale, 'f', -1, 64) + ")"
		}
		w.attr("transform", tf)
	}
	w.attr("clip-path", clipRef(g.ClipPath))
	w.opacity(g.Opacity)
	w.WriteByte('>')
	for _, n := range g.Children {
		n.encode(w)
	}
	w.WriteString("</g>")
}

func (r *Rect) encode(w *writer) {
	w.WriteString("<rect")
	w.num("x", r.X)
	w.num("y", r.Y)
	w.num("width", r.W)
	w.num("height", r.H)
	if r.RX > 0 {
		w.num("rx", r.RX)
	}
	w.attr("fill", r.Fill)
	if r.Stroke != "" {
		w.attr("stroke", r.Stroke)
		w.num("stroke-width", strokeWidth(r.StrokeWidth))
		w.attr("vector-effect", "non-scaling-stroke")
	}
	w.opacity(r.Opacity)
	w.attr("clip-path", clipRef(r.ClipPath))
	w.WriteString("/>")
}

func (c *Circle) encode(w *writer) {
	w.WriteString("<circle")
	w.num("cx", c.CX)
	w.num("cy", c.CY)
	w.num("r", c.R)
	w.attr("fill", c.Fill)
	w.WriteString("/>")
}

func (l *Line) encode(w *writer) {
	w.WriteString("<line")
	w.num("x1", l.X1)
	w.num("y1", l.Y1)
	w.num("x2", l.X2)
	w.num("y2", l.Y2)
	w.attr("stroke", l.Stroke)
	w.num("stroke-width", strokeWidth(l.StrokeWidth))
	w.attr("vector-effect", "non-scaling-stroke")
	w.WriteString("/>")
}

func (p *Path) encode(w *writer) {
	w.WriteString("<path")
	w.attr("d", p.D)
	fill := p.Fill
	if fill == "" {
		fill = "none"
	}
	w.attr("fill", fill)
	if p.Stroke != "" {
		w.attr("stroke", p.Stroke)
		w.num("stroke-width", strokeWidth(p.StrokeWidth))
		if p.Round {
			w.attr("stroke-linecap", "round")
			w.attr("stroke-linejoin", "round")
		}
	}
	w.opacity(p.Opacity)
	w.WriteString("/>")
}

func (t *Text) encode(w *writer) {
	w.WriteString("<text")
	w.num("x", t.X)
	w.num("y", t.Y)
	w.attr("font-family", t.Family)
	if t.FontSize > 0 {
		w.num("font-size", t.FontSize)
	}
	if t.Weight > 0 {
		w.attr("font-weight", strconv.Itoa(t.Weight))
	}
	if t.LetterSpacing != 0 {
		w.num("letter-spacing", t.LetterSpacing)
	}
	w.attr("fill", t.Fill)
	if t.Anchor != "" && t.Anchor != "start" {
		w.attr("text-anchor", t.Anchor)
	}
	w.opacity(t.Opacity)
	w.WriteByte('>')
	_ = xml.EscapeText(w, []byte(t.Content))
	w.WriteString("</text>")
}

func (i *Image) encode(w *writer) {
	w.WriteString("<image")
	w.num("x", i.X)
	w.num("y", i.Y)
	w.num("width", i.W)
	w.num("height", i.H)
	w.attr("href", i.Href)
	w.attr("clip-path", clipRef(i.ClipPath))
	w.WriteString("/>")
}

func (ic *Icon) encode(w *writer) {
	w.WriteString("<svg")
	w.num("x", ic.X)
	w.num("y", ic.Y)
	w.num("width", ic.W)
	w.num("height", ic.H)
	w.attr("viewBox", ic.ViewBox.String())
	w.WriteByte('>')
	w.WriteString(ic.Body)
	w.WriteString("</svg>")
}

// String 返回 viewBox 属性值。
func (v ViewBox) String() string {
	return Num(v.MinX) + " " + Num(v.MinY) + " " + Num(v.W) + " " + Num(v.H)
}

// Standalone 把图标包装成独立 SVG，供栅格化使用。
func (ic *Icon) Standalone() []byte {
	var w writer
	w.WriteString("<svg")
	w.attr("xmlns", namespace)
	w.attr("viewBox", ic.ViewBox.String())
	w.num("width", ic.ViewBox.W)
	w.num("height", ic.ViewBox.H)
	w.WriteByte('>')
	w.WriteString(ic.Body)
	w.WriteString("</svg>")
	return w.Bytes()
}

func strokeWidth(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return v
}
