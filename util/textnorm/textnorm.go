// Package textnorm 规范化用户输入的分类、标签与标题
package textnorm

import (
	"path"
	"strings"

	"github.com/h2non/filetype"
	"github.com/mozillazg/go-pinyin"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Label 去除首尾空白、NFC 归一并转小写；内部连续空白压缩为单个空格
func Label(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	// Caser 有状态，不能跨 goroutine 复用
	t := transform.Chain(norm.NFC, cases.Lower(language.Und))
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// Labels 规范化并去重，丢弃空值，保持首次出现顺序；结果永不为 nil
func Labels(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		l := Label(v)
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

// Title 去除首尾空白并做 NFC 归一，不改变大小写
func Title(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Pinyin 返回标题中汉字的拼音（无声调），不含汉字时返回 nil
func Pinyin(title string) []string {
	py := pinyin.LazyConvert(title, nil)
	if len(py) == 0 {
		return nil
	}
	return py
}

// MediaKind 根据 URL 扩展名判断媒体类型（image/video），无法识别时返回空串
func MediaKind(rawURL string) string {
	p := rawURL
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(p)), ".")
	if ext == "jpeg" {
		ext = "jpg"
	}
	if ext == "" || !filetype.IsSupported(ext) {
		return ""
	}
	kind := filetype.GetType(ext).MIME.Type
	if kind != "image" && kind != "video" {
		return ""
	}
	return kind
}
