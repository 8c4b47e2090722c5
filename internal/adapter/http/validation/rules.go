package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const (
	TagTaskTitle       = "taskTitle"
	TagTaskDescription = "taskDescription"
	TagPersonName      = "personName"
	TagUsername        = "username"
	TagNotBlank        = "notblank"
)

var (
	taskTitlePattern       = regexp.MustCompile(`^[\p{L}0-9 ,.?!'"()\-]{3,100}$`)
	taskDescriptionPattern = regexp.MustCompile(`^[\p{L}0-9 ,.?!'"()\-]{3,500}$`)
	personNamePattern      = regexp.MustCompile(`^[\p{L}\s'-]+$`)
	usernamePattern        = regexp.MustCompile(`^[A-Za-z0-9\s._-]{2,30}$`)
)

const personNameMinLength = 2

// RegisterGinValidators adds the custom rules to gin's binding engine.
func RegisterGinValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected gin validator engine %T", binding.Validator.Engine())
	}
	return Register(v)
}

func Register(v *validator.Validate) error {
	rules := map[string]validator.Func{
		TagTaskTitle:       matches(taskTitlePattern),
		TagTaskDescription: matches(taskDescriptionPattern),
		TagPersonName:      personName,
		TagUsername:        matches(usernamePattern),
		TagNotBlank:        validators.NotBlank,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

func matches(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	}
}

// personName accepts letters, spaces, apostrophes and hyphens. The tag
// parameter is the maximum length in characters.
func personName(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	maxLength, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	length := utf8.RuneCountInString(value)
	return length >= personNameMinLength && length <= maxLength && personNamePattern.MatchString(value)
}
