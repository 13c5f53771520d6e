package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// ErrEmptyInput is returned when there is nothing to decode.
var ErrEmptyInput = errors.New("empty input")

// RepairJSON attempts to fix common JSON errors in hand-typed payloads.
// Supported repairs:
// - Missing quotes around keys
// - Single quotes instead of double quotes
// - Unclosed arrays/objects
// - Trailing commas
// - Comments in JSON
func RepairJSON(malformedJSON string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformedJSON)
	if err != nil {
		return "", fmt.Errorf("json repair failed: %w", err)
	}
	return repaired, nil
}

// ParseHJSON parses Human-friendly JSON (Hjson) and returns standard JSON.
// Hjson supports comments, unquoted keys and strings, and optional commas,
// which makes it the format of article front matter.
func ParseHJSON(hjsonData string) (string, error) {
	var result interface{}
	if err := hjson.Unmarshal([]byte(hjsonData), &result); err != nil {
		return "", fmt.Errorf("hjson parse: %w", err)
	}

	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	return string(jsonBytes), nil
}

// DecodeHJSON parses Hjson into target through its JSON tags.
func DecodeHJSON(hjsonData string, target interface{}) error {
	normalized, err := ParseHJSON(hjsonData)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(normalized), target); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

// SmartParse tries multiple parsing strategies to decode a calculator payload.
// Order of attempts:
// 1. Standard JSON parse
// 2. JSON repair
// 3. Hjson parse (most lenient, and the only one tried for braceless input)
// It returns the JSON text that decoded successfully.
func SmartParse(input string, target interface{}) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", ErrEmptyInput
	}

	// Braceless input can only be an Hjson root object
	if strings.HasPrefix(input, "{") || strings.HasPrefix(input, "[") {
		// Try 1: Standard JSON
		if err := json.Unmarshal([]byte(input), target); err == nil {
			return input, nil
		}

		// Try 2: JSON Repair
		if repaired, err := RepairJSON(input); err == nil {
			if err := json.Unmarshal([]byte(repaired), target); err == nil {
				return repaired, nil
			}
		}
	}

	// Try 3: Hjson
	hjsonResult, err := ParseHJSON(input)
	if err == nil {
		if err := json.Unmarshal([]byte(hjsonResult), target); err == nil {
			return hjsonResult, nil
		}
	}

	return "", fmt.Errorf("all parsing strategies failed for input %q", truncate(input, 60))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
