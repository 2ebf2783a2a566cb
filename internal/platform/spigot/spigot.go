// Package spigot 通过 Spiget API 提供 SpigotMC 资源与作者统计。
// Spigot 只有数字 ID，resource/author 分别映射为 project/user。
package spigot

import (
	"github.com/modfolio/modfolio/internal/platform"
	"github.com/modfolio/modfolio/internal/stats"
	"github.com/modfolio/modfolio/internal/svg"
)

const platformKey = "spigot"

var presentation = platform.Presentation{
	DisplayName:  "Spigot",
	DefaultColor: "#E8A838",
	Icon:         "spigot-platform",
	IconViewBox:  svg.ViewBox{W: 100, H: 100},
	Stats: map[stats.EntityKind][3]platform.StatSlot{
		stats.KindProject: {
			platform.Count("Downloads", stats.FieldDownloads),
			platform.Count("Likes", stats.FieldLikes),
			platform.Rating("Rating", stats.FieldRating),
		},
		stats.KindUser: {
			platform.Count("Downloads", stats.FieldDownloads),
			platform.Integer("Resources", stats.FieldProjects),
			platform.Rating("Rating", stats.FieldRating),
		},
	},
	Sections: map[stats.EntityKind]string{
		stats.KindUser: "Top Resources",
	},
	Badges: map[stats.EntityKind]map[string]platform.BadgeSpec{
		stats.KindProject: {
			"downloads": platform.Count("Downloads", stats.FieldDownloads),
			"likes":     platform.Count("Likes", stats.FieldLikes),
			"rating":    platform.Rating("Rating", stats.FieldRating),
			"versions":  platform.Integer("Versions", stats.FieldVersions),
		},
		stats.KindUser: {
			"downloads": platform.Count("Downloads", stats.FieldDownloads),
			"resources": platform.Integer("Resources", stats.FieldProjects),
			"rating":    platform.Rating("Rating", stats.FieldRating),
		},
	},
	NotFound: map[stats.EntityKind]string{
		stats.KindProject: "Resource not found",
		stats.KindUser:    "Author not found",
	},
	SiteURL: map[stats.EntityKind]string{
		stats.KindProject: "https://www.spigotmc.org/resources/%s/",
		stats.KindUser:    "https://www.spigotmc.org/members/%s/",
	},
}

func init() {
	platform.MustRegister(platform.Metadata{
		Key:             platformKey,
		Description:     "SpigotMC resources and authors via Spiget",
		DefaultUpstream: "https://api.spiget.org",
		Kinds:           []stats.EntityKind{stats.KindProject, stats.KindUser},
		Presentation:    presentation,
		NewProvider: func(deps platform.Deps) platform.Provider {
			return New(deps)
		},
	})
}
