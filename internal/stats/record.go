package stats

import (
	"sort"
	"time"

	"github.com/modfolio/modfolio/internal/upstream"
)

// Aggregates 保存已知的统计值；缺失的键表示该值不可用（渲染为 N/A）。
type Aggregates map[Field]float64

// Value 返回字段值与是否存在。
func (a Aggregates) Value(f Field) (float64, bool) {
	v, ok := a[f]
	return v, ok
}

// Entity 是卡片头部描述的主体。
type Entity struct {
	ID   string
	Slug string
	Name string
	URL  string
	// Type 是项目类别（mod、modpack、plugin...），决定头部图标。
	Type string
	Icon upstream.Result[string]
}

// ItemKind 区分列表行是子项目还是版本/文件。
type ItemKind int

const (
	ItemProject ItemKind = iota + 1
	ItemVersion
)

// Item 是卡片列表中的一行。
type Item struct {
	Kind         ItemKind
	ID           string
	Name         string
	Downloads    float64
	Followers    float64
	ProjectType  string
	Loaders      []string
	GameVersions []string
	Published    time.Time
	Icon         upstream.Result[string]
	Activity     upstream.Result[[]time.Time]
}

// Timings 记录抓取与图片转码耗时，用于日志。
type Timings struct {
	Fetch           time.Duration
	ImageConversion time.Duration
}

// Record 是 provider 输出、缓存保存、composer 消费的规范化统计。
// 写入缓存后视为不可变。
type Record struct {
	Platform   string
	Kind       EntityKind
	Entity     Entity
	Related    upstream.Result[[]Item]
	Aggregates Aggregates
	Activity   upstream.Result[[]time.Time]
	Timings    Timings
}

// SortByDownloads 按下载量降序排列，稳定排序保证同值顺序不变。
func SortByDownloads(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Downloads > items[j].Downloads
	})
}

// SortByPublished 按发布时间降序排列。
func SortByPublished(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Published.After(items[j].Published)
	})
}

// ParseTimes 解析 RFC3339 时间串，忽略无法解析的值。
func ParseTimes(values []string) []time.Time {
	out := make([]time.Time, 0, len(values))
	for _, v := range values {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			continue
		}
		out = append(out, ts)
	}
	return out
}

// MergeActivity 合并所有成功的子项时间序列；全部失败时结果也失败。
func MergeActivity(items []Item) upstream.Result[[]time.Time] {
	var (
		merged []time.Time
		found  bool
	)
	for _, item := range items {
		series, ok := item.Activity.Get()
		if !ok {
			continue
		}
		found = true
		merged = append(merged, series...)
	}
	if !found {
		return upstream.Missing[[]time.Time]()
	}
	return upstream.Ok(merged)
}
