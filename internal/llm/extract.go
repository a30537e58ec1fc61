package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedResponse marks a completion reply that was expected to carry
// JSON but did not. Extraction is best-effort by design; callers pair it
// with a deterministic fallback rather than retrying.
var ErrMalformedResponse = errors.New("llm: malformed response")

// stripFences removes a wrapping markdown code fence and surrounding
// whitespace from a completion reply.
func stripFences(data []byte) []byte {
	s := bytes.TrimSpace(data)
	if len(s) == 0 {
		return s
	}

	if bytes.HasPrefix(s, []byte("```")) {
		if idx := bytes.IndexByte(s, '\n'); idx >= 0 {
			s = s[idx+1:]
		}
		if bytes.HasSuffix(s, []byte("```")) {
			s = s[:len(s)-3]
		}
		s = bytes.TrimSpace(s)
	}

	return s
}

// ExtractJSON locates the first top-level JSON object in a completion reply
// by finding the first '{' and the last '}', and returns the enclosed
// substring if it parses. Prose before and after the object is tolerated.
// Returns ErrMalformedResponse when no valid object can be found.
func ExtractJSON(reply string) (json.RawMessage, error) {
	s := stripFences([]byte(reply))

	start := bytes.IndexByte(s, '{')
	end := bytes.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return nil, fmt.Errorf("%w: no JSON object in reply", ErrMalformedResponse)
	}

	candidate := s[start : end+1]
	if !json.Valid(candidate) {
		return nil, fmt.Errorf("%w: extracted span is not valid JSON", ErrMalformedResponse)
	}
	return json.RawMessage(candidate), nil
}

// Decode extracts the first JSON object from a reply and unmarshals it into
// T. Decode failures share the ErrMalformedResponse sentinel so callers can
// treat "no JSON" and "wrong JSON" identically.
func Decode[T any](reply string) (T, error) {
	var out T
	raw, err := ExtractJSON(reply)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return out, nil
}
