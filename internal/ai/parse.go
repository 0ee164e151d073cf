package ai

import (
	"encoding/json"
	"strings"
)

// extractIdeas pulls a gift-idea array out of a raw model response. Models
// wrap the payload unpredictably: sometimes prose around the JSON, sometimes
// a bare array, sometimes an object keyed "suggestions", "gifts" or "ideas".
// Each extraction strategy is tried in order; the first that yields a
// non-empty array wins. An unrecognizable shape yields nil, never an error.
func extractIdeas(raw string) []GiftIdea {
	for _, extract := range extractors {
		if ideas := extract(raw); len(ideas) > 0 {
			return ideas
		}
	}
	return nil
}

type extractor func(raw string) []GiftIdea

var extractors = []extractor{
	bareArray,
	wrappedIn("suggestions"),
	wrappedIn("gifts"),
	wrappedIn("ideas"),
}

// bareArray handles responses that are (or contain) a JSON array.
func bareArray(raw string) []GiftIdea {
	window := braceWindow(raw, '[', ']')
	if window == "" {
		return nil
	}
	var ideas []GiftIdea
	if err := json.Unmarshal([]byte(window), &ideas); err != nil {
		return nil
	}
	return prune(ideas)
}

// wrappedIn handles responses shaped {"<key>": [...]}.
func wrappedIn(key string) extractor {
	return func(raw string) []GiftIdea {
		window := braceWindow(raw, '{', '}')
		if window == "" {
			return nil
		}
		var payload map[string]json.RawMessage
		if err := json.Unmarshal([]byte(window), &payload); err != nil {
			return nil
		}
		arr, ok := payload[key]
		if !ok {
			return nil
		}
		var ideas []GiftIdea
		if err := json.Unmarshal(arr, &ideas); err != nil {
			return nil
		}
		return prune(ideas)
	}
}

// braceWindow returns the substring from the first open to the last close
// delimiter, inclusive. Empty when no such window exists.
func braceWindow(raw string, open, closing byte) string {
	start := strings.IndexByte(raw, open)
	end := strings.LastIndexByte(raw, closing)
	if start == -1 || end == -1 || end <= start {
		return ""
	}
	return raw[start : end+1]
}

// prune drops entries with no usable query and caps the list at MaxIdeas.
func prune(ideas []GiftIdea) []GiftIdea {
	out := ideas[:0]
	for _, idea := range ideas {
		if strings.TrimSpace(idea.Query) == "" {
			continue
		}
		out = append(out, idea)
	}
	if len(out) > MaxIdeas {
		out = out[:MaxIdeas]
	}
	return out
}
