package domain_util

import "strings"

// TitleTokens 标题分词：转小写后按单个空格切分，丢弃空串，去重并保持首次出现顺序
func TitleTokens(title string) []string {
	parts := strings.Split(strings.ToLower(title), " ")
	tokens := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		tokens = append(tokens, p)
	}
	return tokens
}

// StringSet 构造集合，nil 输入得到空集合
func StringSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// IntersectionSize 计算 values 去重后与 set 的交集大小
func IntersectionSize(set map[string]struct{}, values []string) int {
	if len(set) == 0 || len(values) == 0 {
		return 0
	}
	n := 0
	counted := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := set[v]; !ok {
			continue
		}
		if _, dup := counted[v]; dup {
			continue
		}
		counted[v] = struct{}{}
		n++
	}
	return n
}
