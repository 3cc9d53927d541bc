// Package llmjson recovers JSON objects from free-form LLM replies. Models
// are not contractually guaranteed to emit clean JSON, so recovery degrades
// gracefully instead of failing.
package llmjson

import (
	"encoding/json"
	"log"
	"regexp"
	"strings"
)

// fencedBlock matches a fenced code block (optionally tagged json) wrapping a
// brace-delimited object.
var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// strategy attempts to pull a JSON object out of text; ok is false when the
// strategy does not apply or its candidate fails to parse.
type strategy func(text string) (map[string]any, bool)

// strategies are tried in order; the first success wins.
var strategies = []strategy{
	parseWhole,
	parseFenced,
	parseBraceSpan,
}

// Recover extracts a JSON object from text. It never fails: when every
// strategy misses, it logs a warning and returns an empty map.
func Recover(text string) map[string]any {
	for _, s := range strategies {
		if m, ok := s(text); ok {
			return m
		}
	}
	log.Printf("llmjson.Recover: could not extract valid JSON from model response")
	return map[string]any{}
}

func parseWhole(text string) (map[string]any, bool) {
	return tryParse(text)
}

func parseFenced(text string) (map[string]any, bool) {
	match := fencedBlock.FindStringSubmatch(text)
	if match == nil {
		return nil, false
	}
	return tryParse(match[1])
}

func parseBraceSpan(text string) (map[string]any, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, false
	}
	return tryParse(text[start : end+1])
}

func tryParse(candidate string) (map[string]any, bool) {
	var m map[string]any
	if err := json.Unmarshal([]byte(candidate), &m); err != nil {
		return nil, false
	}
	if m == nil {
		return nil, false
	}
	return m, true
}
