// Package envfile parses the optional .env overrides placed beside a recipe.
//
// The file carries environment for external tool invocations only — values
// such as SOURCE_DATE_EPOCH (reproducible wheel builds) or PIP_INDEX_URL.
// It is deliberately not a general dotenv implementation: no multi-line
// values, no variable interpolation.
package envfile

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/conn-castle/wheelstage/internal/messages"
)

// Parse reads .env content into a key-value map.
// content is the raw file content; returns parsed key/value pairs or an error.
func Parse(content string) (map[string]string, error) {
	env := make(map[string]string)
	if content == "" {
		return env, nil
	}

	scanner := bufio.NewScanner(strings.NewReader(content))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		key, value, ok, err := parseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf(messages.EnvfileLineErrorFmt, lineNo, err)
		}
		if !ok {
			continue
		}
		env[key] = value
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf(messages.EnvfileReadFailedFmt, err)
	}

	return env, nil
}

// Merge overlays overrides onto a base environment in KEY=VALUE form.
// Keys present in overrides replace any base entry with the same name;
// the base slice is not modified.
func Merge(base []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return append([]string(nil), base...)
	}
	merged := make([]string, 0, len(base)+len(overrides))
	replaced := make(map[string]bool, len(overrides))
	for _, entry := range base {
		key := entry
		if idx := strings.IndexByte(entry, '='); idx >= 0 {
			key = entry[:idx]
		}
		if value, ok := overrides[key]; ok {
			merged = append(merged, key+"="+value)
			replaced[key] = true
			continue
		}
		merged = append(merged, entry)
	}
	for key, value := range overrides {
		if !replaced[key] {
			merged = append(merged, key+"="+value)
		}
	}
	return merged
}

// parseLine parses a single .env line and returns key/value when present.
func parseLine(line string) (string, string, bool, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false, nil
	}
	if strings.HasPrefix(trimmed, "export ") {
		trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "export "))
	}
	idx := strings.Index(trimmed, "=")
	if idx < 0 {
		return "", "", false, fmt.Errorf(messages.EnvfileMissingEquals)
	}
	key := strings.TrimSpace(trimmed[:idx])
	if key == "" {
		return "", "", false, fmt.Errorf(messages.EnvfileMissingKey)
	}
	value := strings.TrimSpace(trimmed[idx+1:])
	if len(value) >= 1 && (value[0] == '"' || value[0] == '\'') {
		quote := value[0]
		if len(value) < 2 || value[len(value)-1] != quote {
			return "", "", false, fmt.Errorf(messages.EnvfileUnbalancedQuote)
		}
		value = value[1 : len(value)-1]
	}
	return key, value, true, nil
}
