// Place for pure domain logic that doesn't depend on Gin/GORM, easy to unit test.
package core

import (
	"strings"
	"unicode/utf8"
)

// NormalizeName trims a user supplied display name. Letters are kept as typed.
func NormalizeName(s string) string {
	return strings.TrimSpace(s)
}

// NameLength counts characters, not bytes, so "Zoë" is 3 long.
func NameLength(s string) int {
	return utf8.RuneCountInString(s)
}

// NormalizeTags turns free-form tags into a set: trimmed, lower-cased,
// empties dropped, duplicates removed, first-seen order kept.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags)) // never nil, so JSON renders [] not null
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// UniqueIDs drops repeated ids, keeping the first occurrence order.
func UniqueIDs(ids []uint) []uint {
	out := make([]uint, 0, len(ids))
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
