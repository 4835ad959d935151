package ipc

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func TestToolName(t *testing.T) {
	tests := []struct {
		target string
		want   string
	}{
		{"iterm2", "install_iterm2"},
		{"terminal-app", "install_terminal_app"},
		{"windows-terminal", "install_windows_terminal"},
		{"alacritty", "install_alacritty"},
		{"kitty", "install_kitty"},
	}
	for _, tt := range tests {
		if got := toolName(tt.target); got != tt.want {
			t.Errorf("toolName(%q) = %q, want %q", tt.target, got, tt.want)
		}
	}
}

type emptySource struct{}

func (emptySource) ThemeColors(id string) (map[string]string, error) { return nil, nil }
func (emptySource) ThemeName(id string) (string, error)              { return "", nil }

func TestNew_RegistersWithoutPanic(t *testing.T) {
	logger := log.New(io.Discard)
	s := New(emptySource{}, false, logger, "test")
	if s == nil || s.mcp == nil {
		t.Fatal("server not constructed")
	}
}
