package pathutil

import "strings"

// NormalizePath replaces numeric path segments with ":id" so metric labels
// keep a bounded cardinality. /api/articles/123/comments becomes
// /api/articles/:id/comments.
func NormalizePath(path string) string {
	segments := strings.Split(path, "/")
	changed := false
	for i, segment := range segments {
		if segment != "" && isAllDigits(segment) {
			segments[i] = ":id"
			changed = true
		}
	}
	if !changed {
		return path
	}
	return strings.Join(segments, "/")
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
