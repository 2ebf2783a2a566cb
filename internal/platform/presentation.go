package platform

import (
	"fmt"

	"github.com/modfolio/modfolio/internal/stats"
	"github.com/modfolio/modfolio/internal/svg"
)

// StatFormat 决定统计值的展示格式。
type StatFormat int

const (
	// FormatCount 使用 K/M 缩写。
	FormatCount StatFormat = iota
	// FormatInteger 原样输出整数。
	FormatInteger
	// FormatRank 输出 #n。
	FormatRank
	// FormatRating 保留一位小数。
	FormatRating
)

// StatSlot 是统计网格中的一格。
type StatSlot struct {
	Label  string
	Field  stats.Field
	Format StatFormat
}

// BadgeSpec 描述一个徽章：标签与取值字段。
type BadgeSpec = StatSlot

// Presentation 是平台的展示配置，注册后只读共享。
type Presentation struct {
	Key          string
	DisplayName  string
	DefaultColor string
	// Icon 为平台 logo 在图标表中的键。
	Icon        string
	IconViewBox svg.ViewBox
	Stats       map[stats.EntityKind][3]StatSlot
	Sections    map[stats.EntityKind]string
	Badges      map[stats.EntityKind]map[string]BadgeSpec
	NotFound    map[stats.EntityKind]string
	// SiteURL 为 fmt 模板，%s 替换为实体 slug。
	SiteURL map[stats.EntityKind]string
}

// StatSlots 返回实体类型对应的三格统计。
func (p Presentation) StatSlots(kind stats.EntityKind) ([3]StatSlot, bool) {
	slots, ok := p.Stats[kind]
	return slots, ok
}

// Section 返回列表标题。
func (p Presentation) Section(kind stats.EntityKind) string {
	if s, ok := p.Sections[kind]; ok {
		return s
	}
	if kind == stats.KindProject {
		return "Latest Versions"
	}
	return "Top Projects"
}

// Badge 查找徽章定义。
func (p Presentation) Badge(kind stats.EntityKind, stat string) (BadgeSpec, bool) {
	spec, ok := p.Badges[kind][stat]
	return spec, ok
}

// BadgeNames 返回某实体类型支持的徽章名。
func (p Presentation) BadgeNames(kind stats.EntityKind) []string {
	names := make([]string, 0, len(p.Badges[kind]))
	for name := range p.Badges[kind] {
		names = append(names, name)
	}
	return names
}

// NotFoundMessage 返回实体不存在时的提示文案。
func (p Presentation) NotFoundMessage(kind stats.EntityKind) string {
	if msg, ok := p.NotFound[kind]; ok {
		return msg
	}
	return "Resource not found"
}

// EntityURL 生成实体在平台站点上的地址。
func (p Presentation) EntityURL(kind stats.EntityKind, slug string) string {
	pattern, ok := p.SiteURL[kind]
	if !ok || slug == "" {
		return ""
	}
	return fmt.Sprintf(pattern, slug)
}

// DefaultPresentation 在平台未知时用于错误卡片。
func DefaultPresentation() Presentation {
	if meta, ok := Resolve("modrinth"); ok {
		return meta.Presentation
	}
	return Presentation{
		Key:          "modrinth",
		DisplayName:  "Modrinth",
		DefaultColor: "#1bd96a",
		Icon:         "modrinth",
		IconViewBox:  svg.ViewBox{W: 512, H: 514},
	}
}

// Count 构造按 K/M 缩写展示的统计格。
func Count(label string, field stats.Field) StatSlot {
	return StatSlot{Label: label, Field: field, Format: FormatCount}
}

// Integer 构造原样展示的整数统计格。
func Integer(label string, field stats.Field) StatSlot {
	return StatSlot{Label: label, Field: field, Format: FormatInteger}
}

// Rank 构造 #n 形式的排名统计格。
func Rank(label string, field stats.Field) StatSlot {
	return StatSlot{Label: label, Field: field, Format: FormatRank}
}

// Rating 构造一位小数的评分统计格。
func Rating(label string, field stats.Field) StatSlot {
	return StatSlot{Label: label, Field: field, Format: FormatRating}
}
