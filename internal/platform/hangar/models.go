package hangar

import (
	"sort"
	"strings"
)

type page[T any] struct {
	Pagination struct {
		Count int `json:"count"`
	} `json:"pagination"`
	Result []T `json:"result"`
}

type projectStats struct {
	Downloads float64 `json:"downloads"`
	Views     float64 `json:"views"`
	Stars     float64 `json:"stars"`
	Watchers  float64 `json:"watchers"`
}

type project struct {
	Name      string `json:"name"`
	Namespace struct {
		Owner string `json:"owner"`
		Slug  string `json:"slug"`
	} `json:"namespace"`
	Stats       projectStats `json:"stats"`
	AvatarURL   string       `json:"avatarUrl"`
	Category    string       `json:"category"`
	CreatedAt   string       `json:"createdAt"`
	LastUpdated string       `json:"lastUpdated"`
}

// path 返回站点上的 owner/slug 路径。
func (p project) path() string {
	if p.Namespace.Owner == "" {
		return p.Namespace.Slug
	}
	return p.Namespace.Owner + "/" + p.Namespace.Slug
}

type version struct {
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	Stats     struct {
		TotalDownloads float64 `json:"totalDownloads"`
	} `json:"stats"`
	Downloads            map[string]any      `json:"downloads"`
	PlatformDependencies map[string][]string `json:"platformDependencies"`
}

// platforms 返回版本支持的服务端（PAPER、VELOCITY...），按名称排序并转小写。
func (v version) platforms() []string {
	out := make([]string, 0, len(v.Downloads))
	for name := range v.Downloads {
		out = append(out, strings.ToLower(name))
	}
	sort.Strings(out)
	return out
}

// gameVersions 合并所有平台依赖的 Minecraft 版本并去重。
func (v version) gameVersions() []string {
	keys := make([]string, 0, len(v.PlatformDependencies))
	for k := range v.PlatformDependencies {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	seen := make(map[string]bool)
	var out []string
	for _, k := range keys {
		for _, gv := range v.PlatformDependencies[k] {
			if !seen[gv] {
				seen[gv] = true
				out = append(out, gv)
			}
		}
	}
	return out
}

type user struct {
	Name         string `json:"name"`
	AvatarURL    string `json:"avatarUrl"`
	ProjectCount int    `json:"projectCount"`
}
