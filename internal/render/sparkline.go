package render

import (
	"strings"
	"time"

	"github.com/modfolio/modfolio/internal/svg"
)

const (
	sparklineDays      = 30
	sparklineBaseline  = 108.5
	defaultSparkWidth  = 420
	defaultSparkHeight = 56.25
	day                = 24 * time.Hour
)

// Sparkline 是描边路径与填充路径；无数据时均为空串。
type Sparkline struct {
	Stroke string
	Fill   string
}

// Empty 判断是否没有可画的曲线。
func (s Sparkline) Empty() bool { return s.Stroke == "" }

type point struct{ x, y float64 }

// GenerateSparkline 将时间戳按天分到最近 30 个桶中并生成平滑曲线。
// 早于 30 天或晚于 now 的时间戳被丢弃，恰好等于 now 的计入最后一个桶。
func GenerateSparkline(timestamps []time.Time, now time.Time, width, maxHeight float64) Sparkline {
	if len(timestamps) == 0 {
		return Sparkline{}
	}
	if width <= 0 {
		width = defaultSparkWidth
	}
	if maxHeight <= 0 {
		maxHeight = defaultSparkHeight
	}

	counts := bucketize(timestamps, now)
	peak := 1
	for _, c := range counts {
		if c > peak {
			peak = c
		}
	}

	points := make([]point, sparklineDays)
	for i, c := range counts {
		points[i] = point{
			x: float64(i+1) * width / (sparklineDays + 1),
			y: sparklineBaseline - float64(c)/float64(peak)*maxHeight,
		}
	}

	var b strings.Builder
	b.WriteString("M 0," + svg.Num(sparklineBaseline))
	b.WriteString(" L " + pair(points[0].x, points[0].y))
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1], points[i]
		next := cur
		if i < len(points)-1 {
			next = points[i+1]
		}
		cp1 := point{x: prev.x + (cur.x-prev.x)*0.5, y: prev.y}
		cp2 := point{x: cur.x - (next.x-prev.x)*0.16, y: cur.y}
		b.WriteString(" C " + pair(cp1.x, cp1.y) + " " + pair(cp2.x, cp2.y) + " " + pair(cur.x, cur.y))
	}
	b.WriteString(" L " + pair(width, sparklineBaseline))

	stroke := b.String()
	return Sparkline{Stroke: stroke, Fill: stroke + " Z"}
}

func bucketize(timestamps []time.Time, now time.Time) []int {
	counts := make([]int, sparklineDays)
	start := now.Add(-sparklineDays * day)
	for _, ts := range timestamps {
		if ts.Before(start) || ts.After(now) {
			continue
		}
		idx := int(ts.Sub(start) / day)
		if idx >= sparklineDays {
			idx = sparklineDays - 1
		}
		counts[idx]++
	}
	return counts
}

func pair(x, y float64) string {
	return svg.Num(x) + "," + svg.Num(y)
}
