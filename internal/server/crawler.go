package server

import (
	"strings"

	"github.com/gofiber/fiber/v3"
)

// 社交平台预览爬虫无法渲染 SVG，需要返回 PNG。
var imageCrawlers = []string{
	"Discordbot",
	"Twitterbot",
	"facebookexternalhit",
	"Slackbot",
	"TelegramBot",
	"WhatsApp",
	"LinkedInBot",
	"SkypeUriPreview",
}

// 其余已知爬虫仅用于日志。
var otherCrawlers = []string{
	"github-camo",
	"Dropbox",
	"FacebookBot",
	"Googlebot",
	"Bingbot",
}

// DetectCrawler 按 User-Agent 子串（不区分大小写）识别爬虫，返回名称以及是否需要位图。
func DetectCrawler(userAgent string) (string, bool) {
	ua := strings.ToLower(userAgent)
	if ua == "" {
		return "", false
	}
	for _, name := range imageCrawlers {
		if strings.Contains(ua, strings.ToLower(name)) {
			return name, true
		}
	}
	for _, name := range otherCrawlers {
		if strings.Contains(ua, strings.ToLower(name)) {
			return name, false
		}
	}
	return "", false
}

// rasterFromFormat 解析 ?format=；显式的 svg 会覆盖爬虫判断。
func rasterFromFormat(format string) (raster bool, explicit bool) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "image", "png":
		return true, true
	case "svg":
		return false, true
	default:
		return false, false
	}
}

func crawlerMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		name, wantsImage := DetectCrawler(c.Get(fiber.HeaderUserAgent))
		if name != "" {
			c.Locals(contextKeyCrawler, name)
		}
		if raster, explicit := rasterFromFormat(c.Query("format")); explicit {
			wantsImage = raster
		}
		c.Locals(contextKeyRaster, wantsImage)
		return c.Next()
	}
}

// WantsRaster 返回中间件判定的输出格式，true 表示 PNG。
func WantsRaster(c fiber.Ctx) bool {
	if value, ok := c.Locals(contextKeyRaster).(bool); ok {
		return value
	}
	return false
}

// Crawler 返回识别到的爬虫名称，普通客户端为空。
func Crawler(c fiber.Ctx) string {
	if value, ok := c.Locals(contextKeyCrawler).(string); ok {
		return value
	}
	return ""
}
