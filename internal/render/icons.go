package render

import (
	"strings"

	"github.com/modfolio/modfolio/internal/svg"
)

var iconViewBox = svg.ViewBox{W: 24, H: 24}

// IconBody 返回着色后的图标片段；未知图标返回空串。
func IconBody(name, color string) string {
	body, ok := iconBodies[name]
	if !ok {
		return ""
	}
	return strings.ReplaceAll(body, "currentColor", color)
}

// HasIcon 判断图标表中是否存在该键。
func HasIcon(name string) bool {
	_, ok := iconBodies[name]
	return ok
}

func icon(name, color string, x, y, w, h float64) *svg.Icon {
	return &svg.Icon{X: x, Y: y, W: w, H: h, ViewBox: iconViewBox, Body: IconBody(name, color)}
}

var loaderColors = map[string]string{
	"fabric":        "#8a7b71",
	"quilt":         "#8b61b4",
	"forge":         "#5b6197",
	"neoforge":      "#dc895c",
	"liteloader":    "#4c90de",
	"bukkit":        "#e78362",
	"bungeecord":    "#c69e39",
	"folia":         "#6aa54f",
	"paper":         "#e67e7e",
	"purpur":        "#7763a3",
	"spigot":        "#cd7a21",
	"velocity":      "#4b98b0",
	"waterfall":     "#5f83cb",
	"sponge":        "#c49528",
	"ornithe":       "#6097ca",
	"bta-babric":    "#5ba938",
	"legacy-fabric": "#6879f6",
	"nilloader":     "#dd5088",
	"minecraft":     "#62C940",
}

// LoaderColor 返回加载器品牌色，未知时为灰色。
func LoaderColor(loader string) string {
	if c, ok := loaderColors[strings.ToLower(loader)]; ok {
		return c
	}
	return "#8b949e"
}

var projectTypeIcons = map[string]string{
	"mod":          "box",
	"modpack":      "package-open",
	"resourcepack": "paintbrush",
	"shader":       "glasses",
	"plugin":       "plug",
	"datapack":     "datapack",
	"world":        "earth",
	"minigame":     "earth",
	"addon":        "braces",
	"optifine":     "optifine",
	"canvas":       "canvas",
}

// ProjectTypeIcon 将项目类别映射到图标键。
func ProjectTypeIcon(projectType string) string {
	if name, ok := projectTypeIcons[strings.ToLower(projectType)]; ok {
		return name
	}
	return "box"
}
