// Package jsonc reads JSON-with-comments documents, the dialect Windows
// Terminal uses for its settings file. Comments and trailing commas are
// stripped so the remainder parses as plain JSON; the stripping is
// string-aware, so comment markers inside string literals survive.
package jsonc

import (
	"encoding/json"
	"fmt"
)

// Strip removes // and /* */ comments and trailing commas from a JSONC
// document. Line comments end at the newline (the newline is kept); an
// unterminated block comment consumes the rest of the document.
func Strip(data []byte) []byte {
	out := make([]byte, 0, len(data))

	inString := false
	escaped := false

	for i := 0; i < len(data); i++ {
		c := data[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			out = append(out, c)
			continue
		}

		if c == '"' {
			inString = true
			out = append(out, c)
			continue
		}

		if c == '/' && i+1 < len(data) {
			switch data[i+1] {
			case '/':
				for i < len(data) && data[i] != '\n' {
					i++
				}
				if i < len(data) {
					out = append(out, '\n')
				}
				continue
			case '*':
				i += 2
				for i+1 < len(data) && !(data[i] == '*' && data[i+1] == '/') {
					i++
				}
				i++ // lands on '/', loop increment moves past it
				continue
			}
		}

		out = append(out, c)
	}

	return stripTrailingCommas(out)
}

// stripTrailingCommas drops commas that directly precede a closing bracket,
// looking across whitespace but not across string boundaries (Strip already
// left strings intact, and a comma inside a string is passed through here
// the same way).
func stripTrailingCommas(data []byte) []byte {
	out := make([]byte, 0, len(data))

	inString := false
	escaped := false

	for i := 0; i < len(data); i++ {
		c := data[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			out = append(out, c)
			continue
		}

		if c == '"' {
			inString = true
			out = append(out, c)
			continue
		}

		if c == ',' {
			j := i + 1
			for j < len(data) && isSpace(data[j]) {
				j++
			}
			if j < len(data) && (data[j] == '}' || data[j] == ']') {
				continue // drop the comma, keep the whitespace
			}
		}

		out = append(out, c)
	}

	return out
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// Parse strips comments and trailing commas from data and unmarshals the
// result into v. The path is only used to label a parse error.
func Parse(data []byte, path string, v any) error {
	if err := json.Unmarshal(Strip(data), v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
