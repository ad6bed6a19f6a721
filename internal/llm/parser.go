package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseErrorKind classifies why raw model output could not become an ExtractionResult.
type ParseErrorKind string

const (
	// BadJSON means the output was not decodable JSON at all.
	BadJSON ParseErrorKind = "BAD_JSON"
	// MalformedSchema means the JSON decoded but the contract shape is missing
	// (no validation verdict, or a valid verdict without a data payload).
	MalformedSchema ParseErrorKind = "MALFORMED_SCHEMA"
)

// ParseError carries the offending raw text for diagnostics. It is never
// swallowed; callers log it in full and report a generic message upstream.
type ParseError struct {
	Kind ParseErrorKind
	Raw  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse extraction response (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("parse extraction response (%s)", e.Kind)
}

func (e *ParseError) Unwrap() error { return e.Err }

// StripCodeFence removes a markdown code-fence wrapper (``` with an optional
// language tag) from model output and trims surrounding whitespace. Content
// without a fence is returned trimmed and otherwise untouched.
func StripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// drop the language tag, if any, up to the first newline
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		first := strings.TrimSpace(s[:idx])
		if first == "" || isLanguageTag(first) {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func isLanguageTag(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// ParseExtraction turns raw model output into an ExtractionResult. Steps:
// strip any markdown fence, trim, decode, then check contract shape. Date and
// amount semantics are deliberately not checked here; that is the validation
// gate's job.
func ParseExtraction(raw []byte) (*ExtractionResult, error) {
	content := StripCodeFence(string(raw))
	if content == "" {
		return nil, &ParseError{Kind: BadJSON, Raw: string(raw), Err: fmt.Errorf("empty response")}
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &keys); err != nil {
		return nil, &ParseError{Kind: BadJSON, Raw: string(raw), Err: err}
	}
	if _, ok := keys["validation"]; !ok {
		return nil, &ParseError{Kind: MalformedSchema, Raw: string(raw), Err: fmt.Errorf("missing validation key")}
	}

	var res ExtractionResult
	if err := json.Unmarshal([]byte(content), &res); err != nil {
		return nil, &ParseError{Kind: BadJSON, Raw: string(raw), Err: err}
	}

	if strings.EqualFold(res.Validation.Status, "valid") && res.Data == nil {
		return nil, &ParseError{Kind: MalformedSchema, Raw: string(raw), Err: fmt.Errorf("valid verdict without data payload")}
	}
	return &res, nil
}
