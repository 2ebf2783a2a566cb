package render

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	minItems     = 1
	maxItems     = 5
	defaultItems = 5
)

var validate = validator.New()

// Options 是请求级渲染选项，从不持久化。
type Options struct {
	MaxItems        int
	ShowList        bool
	ShowSparklines  bool
	RelativeTime    bool
	AccentColor     string
	BackgroundColor string
	FromCache       bool
}

// DefaultOptions 返回列表、sparkline 全开的默认选项。
func DefaultOptions() Options {
	return Options{
		MaxItems:       defaultItems,
		ShowList:       true,
		ShowSparklines: true,
	}
}

// Normalize 将 MaxItems 夹到 [1,5]，并把非法颜色回退为平台默认色或 transparent。
func (o Options) Normalize(defaultAccent string) Options {
	if o.MaxItems < minItems {
		o.MaxItems = minItems
	}
	if o.MaxItems > maxItems {
		o.MaxItems = maxItems
	}
	if !ValidColor(o.AccentColor) {
		o.AccentColor = defaultAccent
	}
	if !ValidColor(o.BackgroundColor) {
		o.BackgroundColor = "transparent"
	}
	return o
}

// ValidColor 只接受 #RRGGBB。
func ValidColor(c string) bool {
	if c == "" {
		return false
	}
	return validate.Var(strings.TrimSpace(c), "hexcolor,len=7") == nil
}
