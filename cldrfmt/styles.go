package cldrfmt

import (
	"fmt"
	"sync"

	"golang.org/x/text/language"

	"github.com/storestartup/cldr/bundle"
	"github.com/storestartup/cldr/internal/number"
)

// namedStyles is the set of style names resolved through a locale's
// Patterns map rather than treated as a literal user pattern string.
var namedStyles = map[string]bool{
	"standard":   true,
	"currency":   true,
	"percent":    true,
	"permille":   true,
	"scientific": true,
	"accounting": true,
}

// patternCache memoizes compiled patterns keyed by their raw pattern text.
// Concurrent compilation of the same key is harmless (results are equal),
// so this uses a plain RWMutex-guarded map rather than a singleflight.
type patternCache struct {
	mu sync.RWMutex
	m  map[string]*number.Pattern
}

func newPatternCache() *patternCache {
	return &patternCache{m: make(map[string]*number.Pattern)}
}

func (c *patternCache) get(key string) (*number.Pattern, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.m[key]
	return p, ok
}

func (c *patternCache) put(key string, p *number.Pattern) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = p
}

// fastPathStyles names the styles a hand-specialized Formatter.Init* method
// can produce without ever running ParsePattern, per spec's design note on
// avoiding pattern compilation for build-time-known styles. "currency" and
// "accounting" are excluded: their ¤-token shape and (for accounting) the
// negative-subpattern parenthesization always come from the locale bundle.
var fastPathStyles = map[string]bool{
	"standard":   true,
	"scientific": true,
	"percent":    true,
	"permille":   true,
}

// resolvePattern turns patternOrName into a compiled *number.Pattern for
// tag, either by looking it up as a named style in data.Patterns or by
// compiling it directly as a literal pattern string. A named style the
// locale bundle does not override, and that has a hand-specialized
// Formatter.Init* equivalent, skips both the lookup and ParsePattern
// entirely; a bundle override for the same style always takes precedence.
func (ctx *CldrContext) resolvePattern(tag language.Tag, data bundle.LocaleData, patternOrName string) (pat *number.Pattern, fastPath string, err error) {
	if namedStyles[patternOrName] {
		raw, ok := data.Patterns[patternOrName]
		if !ok {
			if fastPathStyles[patternOrName] {
				return nil, patternOrName, nil
			}
			return nil, "", fmt.Errorf("%w: %s (locale %s)", ErrUnknownFormat, patternOrName, tag)
		}
		return ctx.compile(raw)
	}
	return ctx.compile(patternOrName)
}

// compile parses a raw pattern string, memoizing the result. The cache key
// is the pattern text alone: ParsePattern's output depends only on the
// string, not on locale (symbols and digit glyphs are applied later, at
// Format time), so two locales sharing a pattern string share one compiled
// entry.
func (ctx *CldrContext) compile(raw string) (*number.Pattern, string, error) {
	if p, ok := ctx.patterns.get(raw); ok {
		return p, "", nil
	}
	p, err := number.ParsePattern(raw)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrPatternCompile, err)
	}
	ctx.patterns.put(raw, p)
	return p, "", nil
}
