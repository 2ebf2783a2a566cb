package render

import (
	"fmt"
	"math"
	"strconv"

	"github.com/modfolio/modfolio/internal/platform"
	"github.com/modfolio/modfolio/internal/stats"
)

const notAvailable = "N/A"

// FormatNumber 使用 K/M 缩写计数。
func FormatNumber(v float64) string {
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("%.1fK", v/1_000)
	default:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	}
}

// FormatStat 按 slot 的格式输出聚合值，缺失时为 N/A。
func FormatStat(agg stats.Aggregates, slot platform.StatSlot) string {
	v, ok := agg.Value(slot.Field)
	if !ok {
		return notAvailable
	}
	switch slot.Format {
	case platform.FormatRank:
		return "#" + strconv.FormatInt(int64(math.Round(v)), 10)
	case platform.FormatRating:
		return fmt.Sprintf("%.1f", v)
	case platform.FormatInteger:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	default:
		return FormatNumber(v)
	}
}

// Truncate 按字符（rune）截断并追加 "..."。
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
