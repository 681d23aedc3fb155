package cli

import (
	"regexp"
	"unicode"

	"github.com/avolkov/recondesk/internal/client/api"
	"github.com/avolkov/recondesk/internal/common"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	mobilePattern   = regexp.MustCompile(`^\d{10}$`)
)

// validateRegistration mirrors the auth service's own registration rules so
// a bad profile is rejected before any network call.
func validateRegistration(reg api.Registration) common.FieldErrors {
	errs := common.FieldErrors{}

	if len(reg.Username) < 3 || len(reg.Username) > 30 {
		errs["username"] = "username must be between 3 and 30 characters"
	} else if !usernamePattern.MatchString(reg.Username) {
		errs["username"] = "username can only contain letters, numbers, and underscores"
	}

	if !emailPattern.MatchString(reg.Email) {
		errs["email"] = "invalid email format"
	}

	if !mobilePattern.MatchString(reg.MobileNo) {
		errs["mobile_no"] = "mobile number must be exactly 10 digits"
	}

	if !strongPassword(reg.Password) {
		errs["password"] = "password must be at least 8 characters and include uppercase, lowercase, and digits"
	}

	return errs
}

func strongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasDigit, hasUpper, hasLower bool
	for _, c := range password {
		switch {
		case unicode.IsDigit(c):
			hasDigit = true
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		}
	}
	return hasDigit && hasUpper && hasLower
}
