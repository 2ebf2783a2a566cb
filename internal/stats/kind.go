// Package stats defines the platform-neutral statistics record that
// providers produce and the composer consumes.
package stats

import (
	"fmt"
	"strings"
)

// EntityKind 是封闭枚举；所有按类型分支的布局逻辑集中在 render.layoutFor。
type EntityKind int

const (
	KindProject EntityKind = iota + 1
	KindUser
	KindOrganization
	KindCollection
)

// AllKinds 按固定顺序列出全部实体类型。
var AllKinds = []EntityKind{KindProject, KindUser, KindOrganization, KindCollection}

func (k EntityKind) String() string {
	switch k {
	case KindProject:
		return "project"
	case KindUser:
		return "user"
	case KindOrganization:
		return "organization"
	case KindCollection:
		return "collection"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseEntityKind 解析路由中的实体类型，兼容各平台的别名（mod、resource、author、org）。
func ParseEntityKind(raw string) (EntityKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "project", "mod", "resource":
		return KindProject, nil
	case "user", "author":
		return KindUser, nil
	case "organization", "org":
		return KindOrganization, nil
	case "collection":
		return KindCollection, nil
	default:
		return 0, fmt.Errorf("unknown entity kind %q", raw)
	}
}

// Field 标识一项聚合统计。
type Field string

const (
	FieldDownloads Field = "downloads"
	FieldFollowers Field = "followers"
	FieldVersions  Field = "versions"
	FieldProjects  Field = "projects"
	FieldRank      Field = "rank"
	FieldRating    Field = "rating"
	FieldLikes     Field = "likes"
	FieldStars     Field = "stars"
	FieldViews     Field = "views"
)
