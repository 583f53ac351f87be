// Package input reads domain lists from files and stdin, as lines or as a
// JSON string array.
package input

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dangledns/dangler/internal/apperr"
)

// Read reads lines from r, trims whitespace, and returns non-empty lines.
// Blank lines and lines that are only whitespace are dropped.
func Read(r io.Reader) ([]string, error) {
	var inputs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			inputs = append(inputs, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return inputs, nil
}

// ReadJSON decodes a JSON string array from r. Entries are trimmed and empty
// entries dropped, matching Read.
func ReadJSON(r io.Reader) ([]string, error) {
	var raw []string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: decoding JSON domain list: %w", apperr.ErrInvalidInput, err)
	}
	inputs := make([]string, 0, len(raw))
	for _, entry := range raw {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			inputs = append(inputs, entry)
		}
	}
	return inputs, nil
}
