package maven

import (
	"slices"
	"strings"
)

// VersionKey returns the sort key of a version string: its dot-separated
// components that consist solely of ASCII digits, in order, with leading
// zeros removed. Other components are dropped, so "1.0-beta.2" keys as [1 2]
// and "1.0.1" as [1 0 1].
func VersionKey(v string) []string {
	var key []string
	for _, part := range strings.Split(v, ".") {
		if !isDigits(part) {
			continue
		}
		part = strings.TrimLeft(part, "0")
		if part == "" {
			part = "0"
		}
		key = append(key, part)
	}
	return key
}

// CompareVersionKeys compares two keys from [VersionKey] component by
// component as unbounded integers. A key that is a strict prefix of the
// other sorts first. Returns -1, 0 or +1.
func CompareVersionKeys(a, b []string) int {
	for i := range min(len(a), len(b)) {
		if c := compareDigits(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// LatestVersion picks the highest version by [VersionKey]. Empty strings and
// versions without any numeric component are ignored. Among equal keys the
// one listed last wins. Returns false if nothing is usable.
func LatestVersion(versions []string) (string, bool) {
	type candidate struct {
		version string
		key     []string
	}
	var candidates []candidate
	for _, v := range versions {
		if v == "" {
			continue
		}
		if key := VersionKey(v); len(key) > 0 {
			candidates = append(candidates, candidate{v, key})
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return CompareVersionKeys(a.key, b.key)
	})
	return candidates[len(candidates)-1].version, true
}

// compareDigits compares two digit strings without leading zeros.
func compareDigits(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
