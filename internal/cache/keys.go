package cache

import "strings"

// Key 按 platform:entityKind:id[:purpose...] 拼接缓存键。
// platform 与 kind 统一小写，id 原样保留以免误合并大小写敏感的标识。
func Key(platform, kind, id string, purpose ...string) string {
	parts := make([]string, 0, 3+len(purpose))
	parts = append(parts,
		strings.ToLower(strings.TrimSpace(platform)),
		strings.ToLower(strings.TrimSpace(kind)),
		strings.TrimSpace(id),
	)
	for _, p := range purpose {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ":")
}
