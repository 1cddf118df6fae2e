package handlers

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const passwordSymbols = "@$!%*?&#^"

var (
	personNameRe = regexp.MustCompile(`^[A-Za-z]+$`)
	usernameRe   = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	passwordRe   = regexp.MustCompile(`^[A-Za-z0-9@$!%*?&#^]+$`)

	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the custom tags used by request structs to gin's
// validator. Safe to call more than once.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("unexpected gin validator engine")
			return
		}
		for tag, fn := range map[string]validator.Func{
			"personname":     matches(personNameRe),
			"username":       matches(usernameRe),
			"strongpassword": strongPassword,
		} {
			if err := v.RegisterValidation(tag, fn); err != nil {
				registerErr = fmt.Errorf("register %s validator: %w", tag, err)
				return
			}
		}
	})
	return registerErr
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// IsStrongPassword: at least eight characters with a lowercase letter, an
// uppercase letter, a digit and one of @$!%*?&#^, and nothing else.
func IsStrongPassword(s string) bool {
	if len(s) < 8 || !passwordRe.MatchString(s) {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

func strongPassword(fl validator.FieldLevel) bool {
	return IsStrongPassword(fl.Field().String())
}

// bindingMessage turns a binding error into something fit for a form.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request body"
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "personname":
		return field + " may only contain letters"
	case "username":
		return "username may only contain letters and numbers"
	case "strongpassword":
		return "password must be at least 8 characters and include an uppercase letter, a lowercase letter, a number and a special character (" + passwordSymbols + ")"
	default:
		return field + " is invalid"
	}
}
