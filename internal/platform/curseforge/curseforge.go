// Package curseforge 提供 CurseForge 项目统计，需要 API Key。
package curseforge

import (
	"github.com/modfolio/modfolio/internal/platform"
	"github.com/modfolio/modfolio/internal/stats"
	"github.com/modfolio/modfolio/internal/svg"
)

const (
	platformKey = "curseforge"
	// minecraftGameID 是 CurseForge 中 Minecraft 的 gameId。
	minecraftGameID = 432
)

var presentation = platform.Presentation{
	DisplayName:  "CurseForge",
	DefaultColor: "#F16436",
	Icon:         "curseforge",
	IconViewBox:  svg.ViewBox{W: 32, H: 32},
	Stats: map[stats.EntityKind][3]platform.StatSlot{
		stats.KindProject: {
			platform.Count("Downloads", stats.FieldDownloads),
			platform.Rank("Rank", stats.FieldRank),
			platform.Integer("Files", stats.FieldVersions),
		},
	},
	Sections: map[stats.EntityKind]string{
		stats.KindProject: "Latest Files",
	},
	Badges: map[stats.EntityKind]map[string]platform.BadgeSpec{
		stats.KindProject: {
			"downloads": platform.Count("Downloads", stats.FieldDownloads),
			"rank":      platform.Rank("Rank", stats.FieldRank),
			"versions":  platform.Integer("Files", stats.FieldVersions),
			"likes":     platform.Count("Likes", stats.FieldLikes),
		},
	},
	NotFound: map[stats.EntityKind]string{
		stats.KindProject: "Project not found",
	},
	SiteURL: map[stats.EntityKind]string{
		stats.KindProject: "https://www.curseforge.com/minecraft/mc-mods/%s",
	},
}

func init() {
	platform.MustRegister(platform.Metadata{
		Key:             platformKey,
		Description:     "CurseForge Minecraft projects",
		DefaultUpstream: "https://api.curseforge.com",
		RequiresAPIKey:  true,
		APIKeyHeader:    "x-api-key",
		Kinds:           []stats.EntityKind{stats.KindProject},
		Presentation:    presentation,
		NewProvider: func(deps platform.Deps) platform.Provider {
			return New(deps)
		},
	})
}
