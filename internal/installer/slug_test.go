package installer

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"My Theme!! 2", "my-theme-2"},
		{"Catppuccin Mocha", "catppuccin-mocha"},
		{"  spaces  ", "spaces"},
		{"UPPER", "upper"},
		{"a---b", "a-b"},
		{"already-a-slug", "already-a-slug"},
		{"Solarized (Dark)", "solarized-dark"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Slugify(tt.input)
			if got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
			// Re-slugging must be a no-op.
			if again := Slugify(got); again != got {
				t.Errorf("Slugify(%q) = %q, not idempotent", got, again)
			}
		})
	}
}
