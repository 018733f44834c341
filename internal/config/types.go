package config

import (
	"time"
)

// Behaviour selects the visual transition between slides.
type Behaviour string

const (
	BehaviourSlide Behaviour = "slide"
	BehaviourFade  Behaviour = "fade"
)

// Attribute names accepted by the slider, string-encoded as on a host element.
const (
	AttrFlexibleHeight    = "flexible-height"
	AttrInfinite          = "infinite"
	AttrSwipe             = "swipe"
	AttrBehaviour         = "behaviour"
	AttrAutoSlideInterval = "auto-slide-interval"
	AttrPerView           = "per-view"
	AttrStep              = "step"
	AttrSwipeThreshold    = "swipe-threshold"
	AttrStart             = "start"
	AttrCountFormat       = "count-format"
	AttrResponsive        = "responsive"
)

// Defaults applied when an attribute is absent or malformed.
const (
	DefaultPerView        = 1
	DefaultStep           = 1
	DefaultSwipeThreshold = 200
	DefaultCountFormat    = "$current / $total"
)

// SliderConfig is the fully resolved slider configuration. It is produced by
// the attribute parser and the responsive resolver; widget internals never
// re-parse strings.
type SliderConfig struct {
	FlexibleHeight    bool
	Infinite          bool
	Swipe             bool
	Behaviour         Behaviour
	AutoSlideInterval time.Duration
	PerView           int
	Step              int
	SwipeThreshold    int
	Start             int
	CountFormat       string
}

// DefaultSliderConfig returns the configuration used when no attributes are set.
func DefaultSliderConfig() SliderConfig {
	return SliderConfig{
		Behaviour:      BehaviourSlide,
		PerView:        DefaultPerView,
		Step:           DefaultStep,
		SwipeThreshold: DefaultSwipeThreshold,
		CountFormat:    DefaultCountFormat,
	}
}

// ResponsiveRule is one conditional override set keyed by a media condition.
// Rules are kept in declaration order; later matching rules win per field.
type ResponsiveRule struct {
	Media     string    `json:"media" yaml:"media"`
	Overrides Overrides `json:"-" yaml:"-"`
}

// Overrides holds the optional per-field overrides of a responsive rule.
// Nil fields leave the accumulating configuration untouched.
type Overrides struct {
	FlexibleHeight    *bool   `json:"flexible-height" yaml:"flexible-height"`
	Infinite          *bool   `json:"infinite" yaml:"infinite"`
	Swipe             *bool   `json:"swipe" yaml:"swipe"`
	Behaviour         *string `json:"behaviour" yaml:"behaviour"`
	AutoSlideInterval *int    `json:"auto-slide-interval" yaml:"auto-slide-interval"`
	PerView           *int    `json:"per-view" yaml:"per-view"`
	Step              *int    `json:"step" yaml:"step"`
	SwipeThreshold    *int    `json:"swipe-threshold" yaml:"swipe-threshold"`
}

// Apply layers the non-nil override fields on top of cfg and returns the result.
func (o Overrides) Apply(cfg SliderConfig) SliderConfig {
	if o.FlexibleHeight != nil {
		cfg.FlexibleHeight = *o.FlexibleHeight
	}
	if o.Infinite != nil {
		cfg.Infinite = *o.Infinite
	}
	if o.Swipe != nil {
		cfg.Swipe = *o.Swipe
	}
	if o.Behaviour != nil {
		if b := Behaviour(*o.Behaviour); b == BehaviourSlide || b == BehaviourFade {
			cfg.Behaviour = b
		}
	}
	if o.AutoSlideInterval != nil {
		cfg.AutoSlideInterval = clampInterval(*o.AutoSlideInterval)
	}
	if o.PerView != nil && *o.PerView >= 1 {
		cfg.PerView = *o.PerView
	}
	if o.Step != nil && *o.Step >= 1 {
		cfg.Step = *o.Step
	}
	if o.SwipeThreshold != nil && *o.SwipeThreshold >= 0 {
		cfg.SwipeThreshold = *o.SwipeThreshold
	}
	return cfg
}

func clampInterval(ms int) time.Duration {
	if ms <= 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

// Slide is one unit of deck content, addressable by a zero-based index.
type Slide struct {
	Title string `yaml:"title" validate:"required,min=1,max=200"`
	Body  string `yaml:"body,omitempty"`
}

// Deck represents a full deck document: slider attributes plus slide content.
type Deck struct {
	Name       string            `yaml:"name" validate:"required,min=1,max=100"`
	Attributes map[string]string `yaml:"attributes,omitempty" validate:"omitempty,attr_names"`
	Slides     []Slide           `yaml:"slides" validate:"required,min=1,dive"`
}
