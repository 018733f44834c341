package config

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/carouselkit/carousel/internal/logger"
	carouselerrors "github.com/carouselkit/carousel/pkg/errors"
)

// UnmarshalJSON decodes a flat rule object: the media condition plus any
// override fields alongside it.
func (r *ResponsiveRule) UnmarshalJSON(data []byte) error {
	var media struct {
		Media string `json:"media"`
	}
	if err := json.Unmarshal(data, &media); err != nil {
		return err
	}
	var overrides Overrides
	if err := json.Unmarshal(data, &overrides); err != nil {
		return err
	}
	r.Media = media.Media
	r.Overrides = overrides
	return nil
}

// ParseAttributes converts string-encoded slider attributes into a typed
// SliderConfig. Invalid values never fail the slider: each one degrades to
// its default and is logged.
func ParseAttributes(attrs map[string]string, log *logger.Logger) SliderConfig {
	cfg := DefaultSliderConfig()
	if len(attrs) == 0 {
		return cfg
	}

	cfg.FlexibleHeight = attrs[AttrFlexibleHeight] == "yes"
	cfg.Infinite = attrs[AttrInfinite] == "yes"
	cfg.Swipe = attrs[AttrSwipe] == "yes"

	if raw, ok := attrs[AttrBehaviour]; ok {
		switch Behaviour(raw) {
		case BehaviourSlide, BehaviourFade:
			cfg.Behaviour = Behaviour(raw)
		default:
			logDegraded(log, AttrBehaviour, raw, string(BehaviourSlide))
		}
	}

	if raw, ok := attrs[AttrAutoSlideInterval]; ok {
		if ms, err := strconv.Atoi(raw); err == nil && ms > 0 {
			cfg.AutoSlideInterval = clampInterval(ms)
		} else {
			logDegraded(log, AttrAutoSlideInterval, raw, "disabled")
		}
	}

	cfg.PerView = parsePositive(attrs, AttrPerView, DefaultPerView, log)
	cfg.Step = parsePositive(attrs, AttrStep, DefaultStep, log)

	if raw, ok := attrs[AttrSwipeThreshold]; ok {
		if px, err := strconv.Atoi(raw); err == nil && px >= 0 {
			cfg.SwipeThreshold = px
		} else {
			logDegraded(log, AttrSwipeThreshold, raw, strconv.Itoa(DefaultSwipeThreshold))
		}
	}

	if raw, ok := attrs[AttrStart]; ok {
		if idx, err := strconv.Atoi(raw); err == nil && idx >= 0 {
			cfg.Start = idx
		} else {
			logDegraded(log, AttrStart, raw, "0")
		}
	}

	if raw, ok := attrs[AttrCountFormat]; ok && raw != "" {
		cfg.CountFormat = raw
	}

	return cfg
}

// ParseResponsive decodes the JSON-encoded responsive attribute into an
// ordered rule list. A malformed document yields no rules and a ParseError;
// callers keep the base configuration in that case.
func ParseResponsive(raw string, log *logger.Logger) ([]ResponsiveRule, error) {
	if raw == "" {
		return nil, nil
	}

	var rules []ResponsiveRule
	if err := json.Unmarshal([]byte(raw), &rules); err != nil {
		parseErr := carouselerrors.NewParseError(AttrResponsive, 0, err)
		log.Error(parseErr, "ignoring malformed responsive attribute")
		return nil, parseErr
	}

	kept := rules[:0]
	for _, rule := range rules {
		if rule.Media == "" {
			log.Warn("dropping responsive rule without media condition")
			continue
		}
		kept = append(kept, rule)
	}
	return kept, nil
}

func parsePositive(attrs map[string]string, name string, fallback int, log *logger.Logger) int {
	raw, ok := attrs[name]
	if !ok {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		logDegraded(log, name, raw, strconv.Itoa(fallback))
		return fallback
	}
	return value
}

func logDegraded(log *logger.Logger, attr, raw, used string) {
	log.WithFields(map[string]any{
		"attribute": attr,
		"value":     raw,
		"used":      used,
	}).Warn(fmt.Sprintf("invalid %s attribute, using default", attr))
}
