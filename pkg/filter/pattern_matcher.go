package filter

import (
	"regexp"
	"strings"
	"sync"
)

// PatternMatcher matches text against user supplied regular expressions,
// caching the compiled form of every pattern it has seen.
type PatternMatcher struct {
	mu       sync.Mutex
	compiled map[string]*regexp.Regexp
}

// NewPatternMatcher creates a new pattern matcher
func NewPatternMatcher() *PatternMatcher {
	return &PatternMatcher{
		compiled: make(map[string]*regexp.Regexp),
	}
}

// MatchAny reports whether text contains a match for any pattern. A pattern
// that is not a valid regular expression is matched as a plain substring.
func (pm *PatternMatcher) MatchAny(patterns []string, text string) bool {
	for _, p := range patterns {
		if re := pm.regexp(p); re != nil {
			if re.MatchString(text) {
				return true
			}
			continue
		}
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

func (pm *PatternMatcher) regexp(pattern string) *regexp.Regexp {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	if re, ok := pm.compiled[pattern]; ok {
		return re
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		re = nil
	}
	pm.compiled[pattern] = re
	return re
}
