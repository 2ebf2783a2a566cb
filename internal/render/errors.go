package render

import (
	"net/http"
	"strconv"

	"github.com/modfolio/modfolio/internal/platform"
	"github.com/modfolio/modfolio/internal/svg"
)

const (
	errorCardHeight = 120
	errorDetailText = "#a6adc8"
	detailLimit     = 60
)

var statusTitles = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusUnauthorized:        "Unauthorized",
	http.StatusForbidden:           "Forbidden",
	http.StatusNotFound:            "Not Found",
	http.StatusTooManyRequests:     "Rate Limit Exceeded",
	http.StatusInternalServerError: "Internal Server Error",
	http.StatusBadGateway:          "API Unavailable",
	http.StatusServiceUnavailable:  "Service Unavailable",
	http.StatusGatewayTimeout:      "Gateway Timeout",
}

// StatusTitle 返回状态码对应的标题，未收录时为 "Error N"。
func StatusTitle(status int) string {
	if title, ok := statusTitles[status]; ok {
		return title
	}
	return "Error " + strconv.Itoa(status)
}

// ErrorCard 渲染 450x120 的错误卡片。
func (c *Composer) ErrorCard(title, detail string, pres platform.Presentation) *svg.Document {
	accent := pres.DefaultColor
	doc := &svg.Document{Width: cardWidth, Height: errorCardHeight}
	root := frame(doc, "error_rectangle", theme{background: "transparent", border: borderColor})

	root.Children = append(root.Children, &svg.Icon{
		X: 15, Y: 15, W: 24, H: 24,
		ViewBox: pres.IconViewBox,
		Body:    IconBody(pres.Icon, accent),
	})

	titleY := 65.0
	if detail != "" {
		titleY = 55
	}
	heading := c.text(cardWidth/2, titleY, title, 16, 600, errorTextColor)
	heading.Anchor = "middle"
	root.Children = append(root.Children, heading)

	if detail != "" {
		sub := c.text(cardWidth/2, 75, Truncate(detail, detailLimit), 12, 0, errorDetailText)
		sub.Anchor = "middle"
		root.Children = append(root.Children, sub)
	}

	root.Children = append(root.Children, c.footer(errorCardHeight, errorDetailText, false)...)
	return doc
}
