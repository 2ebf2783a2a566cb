// Package hangar 提供 PaperMC Hangar 的项目与用户统计。
package hangar

import (
	"github.com/modfolio/modfolio/internal/platform"
	"github.com/modfolio/modfolio/internal/stats"
	"github.com/modfolio/modfolio/internal/svg"
)

const platformKey = "hangar"

var presentation = platform.Presentation{
	DisplayName:  "Hangar",
	DefaultColor: "#3371ED",
	Icon:         "hangar",
	IconViewBox:  svg.ViewBox{W: 100, H: 100},
	Stats: map[stats.EntityKind][3]platform.StatSlot{
		stats.KindProject: {
			platform.Count("Downloads", stats.FieldDownloads),
			platform.Count("Stars", stats.FieldStars),
			platform.Integer("Versions", stats.FieldVersions),
		},
		stats.KindUser: {
			platform.Count("Downloads", stats.FieldDownloads),
			platform.Count("Stars", stats.FieldStars),
			platform.Integer("Projects", stats.FieldProjects),
		},
	},
	Badges: map[stats.EntityKind]map[string]platform.BadgeSpec{
		stats.KindProject: {
			"downloads": platform.Count("Downloads", stats.FieldDownloads),
			"stars":     platform.Count("Stars", stats.FieldStars),
			"views":     platform.Count("Views", stats.FieldViews),
			"versions":  platform.Integer("Versions", stats.FieldVersions),
		},
		stats.KindUser: {
			"downloads": platform.Count("Downloads", stats.FieldDownloads),
			"stars":     platform.Count("Stars", stats.FieldStars),
			"projects":  platform.Integer("Projects", stats.FieldProjects),
		},
	},
	NotFound: map[stats.EntityKind]string{
		stats.KindProject: "Project not found",
		stats.KindUser:    "User not found",
	},
	SiteURL: map[stats.EntityKind]string{
		stats.KindProject: "https://hangar.papermc.io/%s",
		stats.KindUser:    "https://hangar.papermc.io/%s",
	},
}

func init() {
	platform.MustRegister(platform.Metadata{
		Key:             platformKey,
		Description:     "PaperMC Hangar projects and users",
		DefaultUpstream: "https://hangar.papermc.io",
		Kinds:           []stats.EntityKind{stats.KindProject, stats.KindUser},
		Presentation:    presentation,
		NewProvider: func(deps platform.Deps) platform.Provider {
			return New(deps)
		},
	})
}
