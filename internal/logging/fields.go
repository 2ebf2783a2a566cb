package logging

import "github.com/sirupsen/logrus"

// BaseFields 构建 action + 配置路径等基础字段，便于不同入口复用。
func BaseFields(action, configPath string) logrus.Fields {
	return logrus.Fields{
		"action":     action,
		"configPath": configPath,
	}
}

// RenderFields 提供平台/实体/产物与缓存命中字段，供渲染管线日志复用。
func RenderFields(platform, kind, id, artifact string, cacheHit bool) logrus.Fields {
	fields := logrus.Fields{
		"platform":  platform,
		"kind":      kind,
		"id":        id,
		"cache_hit": cacheHit,
	}
	if artifact != "" {
		fields["artifact"] = artifact
	}
	return fields
}
