package utils

import (
	"strings"
	"unicode"
)

// Slugify 把标题转成 URL 安全的标识
// 小写字母数字保留，其余字符折叠成单个连字符，首尾去掉
func Slugify(s string) string {
	var b strings.Builder
	prevDash := true // 抑制开头的连字符
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z' || unicode.IsDigit(r):
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
