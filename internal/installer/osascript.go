package installer

import (
	"fmt"
	"os/exec"
	"strings"
)

// runScript invokes the macOS scripting bridge with a script body. It is a
// package variable so tests can intercept the call. The process is awaited
// to completion; only success or failure is consumed.
var runScript = func(script string) error {
	cmd := exec.Command("osascript", "-e", script)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("osascript: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// escapeScript escapes a value for embedding inside an AppleScript string
// literal. Theme names are user data; without this a name containing a
// quote would break out of the literal.
func escapeScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
