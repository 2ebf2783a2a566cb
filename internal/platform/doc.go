// Package platform 聚合各内容平台（Modrinth、CurseForge、Hangar、Spigot）的统计抓取与展示配置，
// 并提供统一的注册入口。
//
// 平台作者需要：
//  1. 在 internal/platform/<key>/ 目录下实现 Provider；
//  2. 在 init() 中通过 MustRegister 注册 Metadata（含 Presentation）；
//  3. 次要资源（图片、版本时间序列）一律经由 upstream.RunLimited 与 ImageSource 抓取，失败时写入 Result 而不是返回错误。
package platform
