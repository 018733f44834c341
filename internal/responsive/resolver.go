package responsive

import (
	"github.com/carouselkit/carousel/internal/config"
	"github.com/carouselkit/carousel/internal/logger"
)

// Resolver evaluates an ordered rule list against the current viewport.
// Queries are compiled once at construction; rules whose media string cannot
// be parsed never match.
type Resolver struct {
	rules []compiledRule
	log   *logger.Logger
}

type compiledRule struct {
	query     Query
	overrides config.Overrides
	valid     bool
}

// NewResolver compiles the rule list, preserving declaration order.
func NewResolver(rules []config.ResponsiveRule, log *logger.Logger) *Resolver {
	compiled := make([]compiledRule, 0, len(rules))
	for _, rule := range rules {
		query, err := ParseQuery(rule.Media)
		if err != nil {
			log.WithFields(map[string]any{"media": rule.Media}).Warn("skipping responsive rule with unsupported media query")
			compiled = append(compiled, compiledRule{})
			continue
		}
		compiled = append(compiled, compiledRule{query: query, overrides: rule.Overrides, valid: true})
	}
	return &Resolver{rules: compiled, log: log}
}

// Resolve layers every matching rule's overrides on top of base, in list
// order, so a later matching rule wins field by field. With no rules or no
// match the base configuration is returned unchanged.
func (r *Resolver) Resolve(base config.SliderConfig, viewportWidth int) config.SliderConfig {
	if r == nil {
		return base
	}

	resolved := base
	for _, rule := range r.rules {
		if !rule.valid || !rule.query.Matches(viewportWidth) {
			continue
		}
		resolved = rule.overrides.Apply(resolved)
	}
	return resolved
}

// RuleCount returns the number of configured rules, valid or not.
func (r *Resolver) RuleCount() int {
	if r == nil {
		return 0
	}
	return len(r.rules)
}
