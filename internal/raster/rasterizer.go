package raster

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"math"
	"strings"
	"time"

	"github.com/fogleman/gg"
	"github.com/sirupsen/logrus"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/modfolio/modfolio/internal/svg"
)

const defaultWidth = 800

// Options 配置 Rasterizer。
type Options struct {
	// Width 为输出位图的固定宽度，与文档自身宽度无关。
	Width   int
	FontDir string
	Logger  *logrus.Logger
}

// Bitmap 是栅格化结果。
type Bitmap struct {
	PNG        []byte
	Width      int
	Height     int
	RenderTime time.Duration
}

// Rasterizer 将 svg.Document 绘制为 PNG，可并发使用。
type Rasterizer struct {
	width    int
	fonts    *Fonts
	measurer *GlyphMeasurer
	logger   *logrus.Logger
}

// New 加载字体并创建 Rasterizer。
func New(opts Options) (*Rasterizer, error) {
	fonts, err := LoadFonts(opts.FontDir)
	if err != nil {
		return nil, err
	}
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Rasterizer{
		width:    width,
		fonts:    fonts,
		measurer: NewGlyphMeasurer(fonts),
		logger:   logger,
	}, nil
}

// Measurer 返回与绘制字体一致的文本测量器。
func (r *Rasterizer) Measurer() *GlyphMeasurer {
	return r.measurer
}

// Width 返回目标宽度。
func (r *Rasterizer) Width() int {
	return r.width
}

// Rasterize 按 Width/doc.Width 等比缩放绘制整个文档。
func (r *Rasterizer) Rasterize(doc *svg.Document) (Bitmap, error) {
	if doc == nil || doc.Width <= 0 || doc.Height <= 0 {
		return Bitmap{}, errors.New("raster: empty document")
	}
	start := time.Now()
	scale := float64(r.width) / doc.Width
	height := int(math.Ceil(doc.Height * scale))

	p := &painter{
		dc:     gg.NewContext(r.width, height),
		doc:    doc,
		faces:  newFaceCache(r.fonts),
		logger: r.logger,
	}
	defer p.faces.close()

	root := state{scale: scale, opacity: 1}
	for _, node := range doc.Children {
		p.draw(node, root)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, p.dc.Image()); err != nil {
		return Bitmap{}, fmt.Errorf("raster: encode png: %w", err)
	}
	return Bitmap{
		PNG:        buf.Bytes(),
		Width:      r.width,
		Height:     height,
		RenderTime: time.Since(start),
	}, nil
}

// state 是自上而下累积的变换、透明度和裁剪蒙版。
// 仅存在平移与等比缩放，因此设备坐标 = t + s*p。
type state struct {
	tx, ty  float64
	scale   float64
	opacity float64
	mask    *image.Alpha
}

func (s state) pt(x, y float64) (float64, float64) {
	return s.tx + x*s.scale, s.ty + y*s.scale
}

type painter struct {
	dc     *gg.Context
	doc    *svg.Document
	faces  *faceCache
	logger *logrus.Logger
}

func (p *painter) draw(node svg.Node, st state) {
	switch n := node.(type) {
	case *svg.Group:
		p.group(n, st)
	case *svg.Rect:
		p.withClip(n.ClipPath, st, func(st state) { p.rect(n, st) })
	case *svg.Circle:
		p.circle(n, st)
	case *svg.Line:
		p.line(n, st)
	case *svg.Path:
		p.path(n, st)
	case *svg.Text:
		p.text(n, st)
	case *svg.Image:
		p.withClip(n.ClipPath, st, func(st state) { p.image(n, st) })
	case *svg.Icon:
		p.icon(n, st)
	}
}

func (p *painter) group(g *svg.Group, st state) {
	child := st
	if g.Transform.TX != 0 || g.Transform.TY != 0 {
		child.tx, child.ty = st.pt(g.Transform.TX, g.Transform.TY)
	}
	if g.Transform.Scale != 0 {
		child.scale = st.scale * g.Transform.Scale
	}
	if g.Opacity > 0 && g.Opacity < 1 {
		child.opacity = st.opacity * g.Opacity
	}
	p.withClip(g.ClipPath, child, func(inner state) {
		for _, node := range g.Children {
			p.draw(node, inner)
		}
	})
}

// withClip 在 id 指向的裁剪区域内执行 fn；clip-path 坐标使用引用处的坐标系。
func (p *painter) withClip(id string, st state, fn func(state)) {
	if id == "" {
		fn(st)
		return
	}
	clip, ok := p.doc.Clip(id)
	if !ok {
		fn(st)
		return
	}

	w, h := p.dc.Width(), p.dc.Height()
	mc := gg.NewContext(w, h)
	switch shape := clip.Shape.(type) {
	case *svg.Rect:
		x, y := st.pt(shape.X, shape.Y)
		roundedRect(mc, x, y, shape.W*st.scale, shape.H*st.scale, shape.RX*st.scale)
	case *svg.Circle:
		x, y := st.pt(shape.CX, shape.CY)
		mc.DrawCircle(x, y, shape.R*st.scale)
	default:
		fn(st)
		return
	}
	mc.SetRGB(0, 0, 0)
	mc.Fill()
	mask := mc.AsMask()
	if st.mask != nil {
		intersect(mask, st.mask)
	}

	inner := st
	inner.mask = mask
	fn(inner)
}

func roundedRect(dc *gg.Context, x, y, w, h, r float64) {
	if r <= 0 {
		dc.DrawRectangle(x, y, w, h)
		return
	}
	dc.DrawRoundedRectangle(x, y, w, h, r)
}

func intersect(dst, src *image.Alpha) {
	for i := range dst.Pix {
		dst.Pix[i] = uint8(uint16(dst.Pix[i]) * uint16(src.Pix[i]) / 255)
	}
}

// begin 应用蒙版并重置矩阵；所有绘制都使用设备坐标。
func (p *painter) begin(st state) {
	p.dc.Identity()
	if st.mask != nil {
		_ = p.dc.SetMask(st.mask)
	} else {
		p.dc.ResetClip()
	}
}

func (p *painter) setColor(value string, opacity float64) bool {
	c, ok := parseColor(value)
	if !ok {
		return false
	}
	c.A = uint8(math.Round(float64(c.A) * clamp01(opacity)))
	p.dc.SetColor(c)
	return c.A > 0
}

func (p *painter) rect(r *svg.Rect, st state) {
	p.begin(st)
	x, y := st.pt(r.X, r.Y)
	w, h, rx := r.W*st.scale, r.H*st.scale, r.RX*st.scale
	opacity := st.opacity * shapeOpacity(r.Opacity)

	if p.setColor(r.Fill, opacity) {
		roundedRect(p.dc, x, y, w, h, rx)
		p.dc.Fill()
	}
	if r.Stroke != "" && p.setColor(r.Stroke, opacity) {
		p.dc.SetLineWidth(nonZero(r.StrokeWidth) * st.scale)
		roundedRect(p.dc, x, y, w, h, rx)
		p.dc.Stroke()
	}
	p.dc.ClearPath()
}

func (p *painter) circle(c *svg.Circle, st state) {
	p.begin(st)
	if !p.setColor(c.Fill, st.opacity) {
		return
	}
	x, y := st.pt(c.CX, c.CY)
	p.dc.DrawCircle(x, y, c.R*st.scale)
	p.dc.Fill()
}

func (p *painter) line(l *svg.Line, st state) {
	p.begin(st)
	if !p.setColor(l.Stroke, st.opacity) {
		return
	}
	x1, y1 := st.pt(l.X1, l.Y1)
	x2, y2 := st.pt(l.X2, l.Y2)
	p.dc.SetLineWidth(nonZero(l.StrokeWidth) * st.scale)
	p.dc.DrawLine(x1, y1, x2, y2)
	p.dc.Stroke()
}

func (p *painter) path(pa *svg.Path, st state) {
	segments, err := parsePath(pa.D)
	if err != nil {
		p.logger.WithError(err).Debug("raster: skip malformed path")
		return
	}
	p.begin(st)
	opacity := st.opacity * shapeOpacity(pa.Opacity)

	trace := func() {
		p.dc.ClearPath()
		for _, seg := range segments {
			switch seg.cmd {
			case 'M':
				p.dc.MoveTo(st.pt(seg.pts[0], seg.pts[1]))
			case 'L':
				p.dc.LineTo(st.pt(seg.pts[0], seg.pts[1]))
			case 'C':
				x1, y1 := st.pt(seg.pts[0], seg.pts[1])
				x2, y2 := st.pt(seg.pts[2], seg.pts[3])
				x3, y3 := st.pt(seg.pts[4], seg.pts[5])
				p.dc.CubicTo(x1, y1, x2, y2, x3, y3)
			case 'Z':
				p.dc.ClosePath()
			}
		}
	}

	if pa.Fill != "" && pa.Fill != "none" && p.setColor(pa.Fill, opacity) {
		trace()
		p.dc.Fill()
	}
	if pa.Stroke != "" && p.setColor(pa.Stroke, opacity) {
		trace()
		p.dc.SetLineWidth(nonZero(pa.StrokeWidth) * st.scale)
		if pa.Round {
			p.dc.SetLineCap(gg.LineCapRound)
			p.dc.SetLineJoin(gg.LineJoinRound)
		} else {
			p.dc.SetLineCap(gg.LineCapButt)
			p.dc.SetLineJoin(gg.LineJoinBevel)
		}
		p.dc.Stroke()
	}
	p.dc.ClearPath()
}

func (p *painter) text(t *svg.Text, st state) {
	if t.Content == "" || t.FontSize <= 0 {
		return
	}
	p.begin(st)
	if !p.setColor(t.Fill, st.opacity*shapeOpacity(t.Opacity)) {
		return
	}
	p.dc.SetFontFace(p.faces.get(t.FontSize*st.scale, t.Weight))
	x, y := st.pt(t.X, t.Y)
	ax := 0.0
	switch t.Anchor {
	case "middle":
		ax = 0.5
	case "end":
		ax = 1
	}
	p.dc.DrawStringAnchored(t.Content, x, y, ax, 0)
}

func (p *painter) image(im *svg.Image, st state) {
	img, err := decodeDataURI(im.Href)
	if err != nil {
		p.logger.WithError(err).Debug("raster: skip undecodable image")
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	p.begin(st)
	x, y := st.pt(im.X, im.Y)
	p.dc.Translate(x, y)
	p.dc.Scale(im.W*st.scale/float64(b.Dx()), im.H*st.scale/float64(b.Dy()))
	p.dc.DrawImage(img, -b.Min.X, -b.Min.Y)
	p.dc.Identity()
}

// icon 通过 oksvg 在设备分辨率下绘制图标片段，按 xMidYMid meet 居中。
func (p *painter) icon(ic *svg.Icon, st state) {
	if ic.Body == "" || ic.ViewBox.W <= 0 || ic.ViewBox.H <= 0 {
		return
	}
	boxW, boxH := ic.W*st.scale, ic.H*st.scale
	fit := math.Min(boxW/ic.ViewBox.W, boxH/ic.ViewBox.H)
	w, h := int(math.Ceil(ic.ViewBox.W*fit)), int(math.Ceil(ic.ViewBox.H*fit))
	if w <= 0 || h <= 0 {
		return
	}

	parsed, err := oksvg.ReadIconStream(bytes.NewReader(ic.Standalone()), oksvg.WarnErrorMode)
	if err != nil {
		p.logger.WithError(err).Debug("raster: skip unreadable icon")
		return
	}
	parsed.SetTarget(0, 0, float64(w), float64(h))
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	parsed.Draw(rasterx.NewDasher(w, h, scanner), 1)
	if st.opacity < 1 {
		fade(rgba, st.opacity)
	}

	x, y := st.pt(ic.X, ic.Y)
	x += (boxW - float64(w)) / 2
	y += (boxH - float64(h)) / 2
	p.begin(st)
	p.dc.DrawImage(rgba, int(math.Round(x)), int(math.Round(y)))
}

func fade(img *image.RGBA, opacity float64) {
	f := clamp01(opacity)
	for i := range img.Pix {
		img.Pix[i] = uint8(math.Round(float64(img.Pix[i]) * f))
	}
}

func decodeDataURI(href string) (image.Image, error) {
	const prefix = "data:"
	if !strings.HasPrefix(href, prefix) {
		return nil, fmt.Errorf("raster: unsupported image href")
	}
	meta, payload, ok := strings.Cut(href[len(prefix):], ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return nil, fmt.Errorf("raster: image href is not base64")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("raster: decode base64: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("raster: decode %s: %w", strings.TrimSuffix(meta, ";base64"), err)
	}
	return img, nil
}

// parseColor 支持 #RRGGBB、#RGB 与 transparent/none。
func parseColor(value string) (color.NRGBA, bool) {
	value = strings.TrimSpace(value)
	if value == "" || value == "none" || value == "transparent" {
		return color.NRGBA{}, false
	}
	hex := strings.TrimPrefix(value, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, false
	}
	var rgb [3]uint8
	for i := range rgb {
		hi, ok1 := hexNibble(hex[i*2])
		lo, ok2 := hexNibble(hex[i*2+1])
		if !ok1 || !ok2 {
			return color.NRGBA{}, false
		}
		rgb[i] = hi<<4 | lo
	}
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}, true
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func shapeOpacity(v float64) float64 {
	if v <= 0 || v > 1 {
		return 1
	}
	return v
}

func nonZero(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return v
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
