package generate

import (
	"encoding/json"
	"fmt"
	"strings"
)

type candidate struct {
	Front    string `json:"front"`
	Back     string `json:"back"`
	Category string `json:"category"`
}

// parseCandidates reads the JSON array out of a model reply. Models often
// wrap the array in prose or a code fence, so everything outside the first
// '[' and the last ']' is ignored.
func parseCandidates(reply string) ([]candidate, error) {
	raw, err := extractJSONArray(reply)
	if err != nil {
		return nil, err
	}

	var out []candidate
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode cards: %w", err)
	}
	return out, nil
}

func extractJSONArray(s string) (string, error) {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON array found in reply")
	}
	return s[start : end+1], nil
}
