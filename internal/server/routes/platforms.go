package routes

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/modfolio/modfolio/internal/server"
)

// RegisterPlatformRoutes 暴露 /-/platforms 诊断接口，供运维查询启用的平台、上游与徽章。
func RegisterPlatformRoutes(app *fiber.App, registry *server.PlatformRegistry) {
	if app == nil || registry == nil {
		return
	}

	app.Get("/-/platforms", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"platforms": encodePlatforms(registry.List()),
		})
	})

	app.Get("/-/platforms/:key", func(c fiber.Ctx) error {
		key := strings.ToLower(strings.TrimSpace(c.Params("key")))
		if key == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "platform_key_required"})
		}
		route, ok := registry.Lookup(key)
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "platform_not_found"})
		}
		return c.JSON(encodePlatform(*route))
	})
}

type platformPayload struct {
	Key             string              `json:"key"`
	Name            string              `json:"name"`
	Description     string              `json:"description"`
	Upstream        string              `json:"upstream"`
	RequiresAPIKey  bool                `json:"requires_api_key"`
	Configured      bool                `json:"configured"`
	AuthMode        string              `json:"auth_mode"`
	CacheTTLSeconds int64               `json:"cache_ttl_seconds"`
	DefaultColor    string              `json:"default_color"`
	Kinds           []string            `json:"kinds"`
	Badges          map[string][]string `json:"badges"`
}

func encodePlatforms(routes []server.PlatformRoute) []platformPayload {
	if len(routes) == 0 {
		return nil
	}
	result := make([]platformPayload, 0, len(routes))
	for _, route := range routes {
		result = append(result, encodePlatform(route))
	}
	return result
}

func encodePlatform(route server.PlatformRoute) platformPayload {
	meta := route.Meta
	payload := platformPayload{
		Key:             meta.Key,
		Name:            meta.Presentation.DisplayName,
		Description:     meta.Description,
		Upstream:        route.UpstreamURL.String(),
		RequiresAPIKey:  meta.RequiresAPIKey,
		Configured:      route.Configured,
		AuthMode:        route.Config.AuthMode(),
		CacheTTLSeconds: int64(route.CacheTTL / time.Second),
		DefaultColor:    meta.Presentation.DefaultColor,
		Badges:          make(map[string][]string, len(meta.Kinds)),
	}
	for _, kind := range meta.Kinds {
		payload.Kinds = append(payload.Kinds, kind.String())
		payload.Badges[kind.String()] = meta.Presentation.BadgeNames(kind)
	}
	return payload
}
