// Package modrinth 提供 Modrinth 的项目、用户、组织与合集统计。
package modrinth

import (
	"github.com/modfolio/modfolio/internal/platform"
	"github.com/modfolio/modfolio/internal/stats"
	"github.com/modfolio/modfolio/internal/svg"
)

const platformKey = "modrinth"

var (
	aggregateSlots = [3]platform.StatSlot{
		platform.Count("Downloads", stats.FieldDownloads),
		platform.Count("Followers", stats.FieldFollowers),
		platform.Integer("Projects", stats.FieldProjects),
	}
	aggregateBadges = map[string]platform.BadgeSpec{
		"downloads": platform.Count("Downloads", stats.FieldDownloads),
		"followers": platform.Count("Followers", stats.FieldFollowers),
		"projects":  platform.Integer("Projects", stats.FieldProjects),
	}
)

var presentation = platform.Presentation{
	DisplayName:  "Modrinth",
	DefaultColor: "#1bd96a",
	Icon:         "modrinth",
	IconViewBox:  svg.ViewBox{W: 512, H: 514},
	Stats: map[stats.EntityKind][3]platform.StatSlot{
		stats.KindProject: {
			platform.Count("Downloads", stats.FieldDownloads),
			platform.Count("Followers", stats.FieldFollowers),
			platform.Integer("Versions", stats.FieldVersions),
		},
		stats.KindUser:         aggregateSlots,
		stats.KindOrganization: aggregateSlots,
		stats.KindCollection:   aggregateSlots,
	},
	Badges: map[stats.EntityKind]map[string]platform.BadgeSpec{
		stats.KindProject: {
			"downloads": platform.Count("Downloads", stats.FieldDownloads),
			"followers": platform.Count("Followers", stats.FieldFollowers),
			"versions":  platform.Integer("Versions", stats.FieldVersions),
		},
		stats.KindUser:         aggregateBadges,
		stats.KindOrganization: aggregateBadges,
		stats.KindCollection:   aggregateBadges,
	},
	NotFound: map[stats.EntityKind]string{
		stats.KindProject:      "Project not found",
		stats.KindUser:         "User not found",
		stats.KindOrganization: "Organization not found",
		stats.KindCollection:   "Collection not found",
	},
	SiteURL: map[stats.EntityKind]string{
		stats.KindProject:      "https://modrinth.com/project/%s",
		stats.KindUser:         "https://modrinth.com/user/%s",
		stats.KindOrganization: "https://modrinth.com/organization/%s",
		stats.KindCollection:   "https://modrinth.com/collection/%s",
	},
}

func init() {
	platform.MustRegister(platform.Metadata{
		Key:             platformKey,
		Description:     "Modrinth projects, users, organizations and collections",
		DefaultUpstream: "https://api.modrinth.com",
		Kinds:           stats.AllKinds,
		Presentation:    presentation,
		NewProvider: func(deps platform.Deps) platform.Provider {
			return New(deps)
		},
	})
}
