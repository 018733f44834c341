package config

import (
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"

	carouselerrors "github.com/carouselkit/carousel/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	knownAttrs = map[string]struct{}{
		AttrFlexibleHeight:    {},
		AttrInfinite:          {},
		AttrSwipe:             {},
		AttrBehaviour:         {},
		AttrAutoSlideInterval: {},
		AttrPerView:           {},
		AttrStep:              {},
		AttrSwipeThreshold:    {},
		AttrStart:             {},
		AttrCountFormat:       {},
		AttrResponsive:        {},
	}
)

// validatorInstance configures and returns the shared validator used across
// the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("attr_names", func(fl validator.FieldLevel) bool {
			field := fl.Field()
			if field.Kind() != reflect.Map {
				return false
			}
			for _, key := range field.MapKeys() {
				if _, ok := knownAttrs[key.String()]; !ok {
					return false
				}
			}
			return true
		})

		validateInst = v
	})
	return validateInst
}

// ValidateDeck checks structural constraints of a deck document.
func ValidateDeck(deck *Deck) error {
	if deck == nil {
		return carouselerrors.NewValidationError("", "deck is empty", nil)
	}

	if err := validatorInstance().Struct(deck); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			first := errs[0]
			return carouselerrors.NewValidationError(first.Namespace(), validationMessage(first), err)
		}
		return carouselerrors.NewValidationError("", err.Error(), err)
	}

	return nil
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "min":
		return "is below the minimum of " + fieldErr.Param()
	case "max":
		return "exceeds the maximum of " + fieldErr.Param()
	case "attr_names":
		return "contains an unknown slider attribute"
	default:
		return "failed rule " + fieldErr.Tag()
	}
}
