package svg

// Node 是文档树中的可绘制元素。
type Node interface {
	encode(w *writer)
}

// Document 是一张卡片或徽章的根节点。
type Document struct {
	Width    float64
	Height   float64
	Defs     []ClipPath
	Children []Node
}

// Add 追加子节点。
func (d *Document) Add(nodes ...Node) {
	d.Children = append(d.Children, nodes...)
}

// AddClip 注册裁剪路径并返回可用于 ClipPath 字段的 id。
func (d *Document) AddClip(id string, shape Node) string {
	d.Defs = append(d.Defs, ClipPath{ID: id, Shape: shape})
	return id
}

// Clip 按 id 查找裁剪路径。
func (d *Document) Clip(id string) (ClipPath, bool) {
	for _, c := range d.Defs {
		if c.ID == id {
			return c, true
		}
	}
	return ClipPath{}, false
}

// ClipPath 的 Shape 只能是 *Rect 或 *Circle。
type ClipPath struct {
	ID    string
	Shape Node
}

// Transform 先缩放再平移；Scale 为 0 视为 1。
type Transform struct {
	TX    float64
	TY    float64
	Scale float64
}

// Group 对子节点统一应用平移、裁剪和透明度。
type Group struct {
	Transform Transform
	ClipPath  string
	Opacity   float64
	Children  []Node
}

type Rect struct {
	X, Y, W, H  float64
	RX          float64
	Fill        string
	Stroke      string
	StrokeWidth float64
	Opacity     float64
	ClipPath    string
}

type Circle struct {
	CX, CY, R float64
	Fill      string
}

type Line struct {
	X1, Y1, X2, Y2 float64
	Stroke         string
	StrokeWidth    float64
}

// Path 只使用 M/L/C/H/V/Z 命令的绝对坐标。
type Path struct {
	D           string
	Fill        string
	Stroke      string
	StrokeWidth float64
	Opacity     float64
	Round       bool
}

type Text struct {
	X, Y          float64
	Content       string
	FontSize      float64
	Weight        int
	Fill          string
	Anchor        string
	Opacity       float64
	LetterSpacing float64
	Family        string
}

// Image 的 Href 必须是 data URI。
type Image struct {
	X, Y, W, H float64
	Href       string
	ClipPath   string
}

// Icon 是嵌套的 <svg> 片段，Body 为已着色的原始标记。
type Icon struct {
	X, Y, W, H float64
	ViewBox    ViewBox
	Body       string
}

type ViewBox struct {
	MinX, MinY, W, H float64
}
