package modrinth

import (
	"time"
)

type user struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

// project 同时覆盖 v2 与 v3 的字段差异（title/name、project_type/project_types）。
type project struct {
	ID           string   `json:"id"`
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Name         string   `json:"name"`
	Downloads    float64  `json:"downloads"`
	Followers    float64  `json:"followers"`
	IconURL      string   `json:"icon_url"`
	ProjectType  string   `json:"project_type"`
	ProjectTypes []string `json:"project_types"`
	Loaders      []string `json:"loaders"`
	GameVersions []string `json:"game_versions"`
	Published    string   `json:"published"`
}

func (p project) displayName() string {
	if p.Title != "" {
		return p.Title
	}
	return p.Name
}

func (p project) projectType() string {
	if p.ProjectType != "" {
		return p.ProjectType
	}
	if len(p.ProjectTypes) > 0 {
		return p.ProjectTypes[0]
	}
	return "mod"
}

func (p project) ref() string {
	if p.ID != "" {
		return p.ID
	}
	return p.Slug
}

type version struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	VersionNumber string   `json:"version_number"`
	Downloads     float64  `json:"downloads"`
	Loaders       []string `json:"loaders"`
	GameVersions  []string `json:"game_versions"`
	DatePublished string   `json:"date_published"`
}

func (v version) published() time.Time {
	return parseTime(v.DatePublished)
}

type organization struct {
	ID      string `json:"id"`
	Slug    string `json:"slug"`
	Name    string `json:"name"`
	IconURL string `json:"icon_url"`
}

type collection struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	IconURL  string   `json:"icon_url"`
	Projects []string `json:"projects"`
}
