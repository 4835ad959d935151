package installer

import "strings"

// Slugify converts a theme display name to a filename-safe slug: lowercase,
// with every run of non-alphanumeric characters collapsed to a single
// hyphen. Re-slugging a slug is a no-op.
func Slugify(name string) string {
	s := strings.ToLower(name)

	var buf strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			buf.WriteRune(r)
		} else {
			buf.WriteRune('-')
		}
	}

	result := buf.String()
	// Clean up multiple consecutive hyphens
	for strings.Contains(result, "--") {
		result = strings.ReplaceAll(result, "--", "-")
	}
	return strings.Trim(result, "-")
}
