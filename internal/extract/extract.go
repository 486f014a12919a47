package extract

import "strings"

// Strategy describes how to find a version token in one vendor's
// diagnostic output.
type Strategy struct {
	// Vendor is a short identifier for the toolchain vendor (e.g. "openjdk").
	Vendor string

	// Anchor is the literal that immediately precedes the version token.
	Anchor string

	// Accept reports whether r belongs to the version token.
	Accept func(r rune) bool
}

// OpenJDK matches the "JRE (11.0.4+11-...)" phrasing printed by
// `java -Xinternalversion` on OpenJDK builds.
var OpenJDK = Strategy{
	Vendor: "openjdk",
	Anchor: "JRE (",
	Accept: isDigitOrDot,
}

// TODO: register strategies for JVMs that do not print the OpenJDK "JRE (" phrasing (OpenJ9, GraalVM native builds).
var strategies = []Strategy{OpenJDK}

// Strategies returns the registered strategies in matching order.
func Strategies() []Strategy {
	out := make([]Strategy, len(strategies))
	copy(out, strategies)
	return out
}

// Extract returns the formatted version ("v" + token) found in raw using the
// registered strategies. The boolean is false when no strategy matched.
func Extract(raw string) (string, bool) {
	return ExtractWith(raw, strategies...)
}

// ExtractWith tries each strategy in order and returns the first success.
func ExtractWith(raw string, candidates ...Strategy) (string, bool) {
	for _, s := range candidates {
		if v, ok := s.Extract(raw); ok {
			return v, true
		}
	}
	return "", false
}

// Detect returns the first strategy whose anchor appears in raw.
func Detect(raw string) (Strategy, bool) {
	for _, s := range strategies {
		if s.Anchor != "" && strings.Contains(raw, s.Anchor) {
			return s, true
		}
	}
	return Strategy{}, false
}

// Extract scans raw for the strategy anchor and returns "v" followed by the
// accepted run of characters after it.
//
// It fails when the anchor is absent or when the run reaches the end of the
// input without a terminating character. An anchor followed directly by a
// rejected character yields the bare "v".
func (s Strategy) Extract(raw string) (string, bool) {
	if s.Anchor == "" || s.Accept == nil {
		return "", false
	}

	idx := strings.Index(raw, s.Anchor)
	if idx < 0 {
		return "", false
	}
	start := idx + len(s.Anchor)

	end := strings.IndexFunc(raw[start:], func(r rune) bool { return !s.Accept(r) })
	if end < 0 {
		return "", false
	}

	return "v" + raw[start:start+end], true
}

func isDigitOrDot(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.'
}
