package services

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/nyaruka/phonenumbers"
	"gymgate/internal/models/request_models"
)

// User-facing messages for the first violated rule. The pipeline stops
// at the first failure so feedback is deterministic.
const (
	MsgRequiredFields      = "Please fill in all the required fields."
	MsgRequiredAdminFields = "Please fill in all the required fields"
	MsgInvalidPhone        = "Invalid phone number."
	MsgInvalidPhoneFormat  = "Invalid phone number format."
	MsgCountryCodeMismatch = "Phone number does not match the selected country code."
	MsgInvalidNameChars    = "Invalid characters in the name fields."
	MsgInvalidEmail        = "Invalid email format."
	MsgInvalidAdminEmail   = "Please enter a valid email address"
	MsgWeakPassword        = "Password must contain at least 4 characters, 1 uppercase letter, 1 lowercase letter and 1 number."
	MsgNameTooLong         = "Name fields exceed the maximum length."
	MsgEmailTooLong        = "Email field exceeds the maximum length."
	MsgPasswordTooLong     = "Password field exceeds the maximum length."
	MsgPhoneExists         = "Phone number already exists."
)

const maxFieldLength = 50

// Admin actions that go through the credential pipeline.
const (
	AdminOptionLogin = "Login"
	AdminOptionAdd   = "Add Admin User"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	namePattern  = regexp.MustCompile(`^[A-Za-z\s]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// The desktop form submitted its placeholder labels verbatim when a
// field was left untouched; a field equal to its label counts as unset.
var placeholderLabels = map[string]struct{}{
	"First Name":      {},
	"Last Name":       {},
	"Email":           {},
	"Country Code":    {},
	"Phone Number":    {},
	"Select Gender":   {},
	"Membership Type": {},
}

func isUnset(value string) bool {
	if value == "" {
		return true
	}
	_, ok := placeholderLabels[value]
	return ok
}

// ValidateMemberInput runs the storage-free rules in fixed order and
// returns the first failure, or "" when every rule passes. Uniqueness
// against storage is the final rule and is applied by the member service.
func ValidateMemberInput(req request_models.MemberRequest) string {
	fields := []string{
		req.FirstName, req.LastName, req.Email,
		req.CountryCode, req.PhoneNumber, req.Gender, req.MembershipType,
	}
	for _, field := range fields {
		if isUnset(field) {
			return MsgRequiredFields
		}
	}

	if msg := validatePhone(req.CountryCode, req.PhoneNumber); msg != "" {
		return msg
	}

	if !namePattern.MatchString(req.FirstName) || !namePattern.MatchString(req.LastName) {
		return MsgInvalidNameChars
	}

	if !emailPattern.MatchString(req.Email) {
		return MsgInvalidEmail
	}

	if len(req.FirstName) > maxFieldLength || len(req.LastName) > maxFieldLength {
		return MsgNameTooLong
	}
	if len(req.Email) > maxFieldLength {
		return MsgEmailTooLong
	}

	return ""
}

// validatePhone checks the combined number against the international
// numbering plan, then the national part against the 10-digit format.
func validatePhone(countryCode, phoneNumber string) string {
	ccDigits := strings.TrimPrefix(countryCode, "+")

	formatted := "+" + ccDigits + phoneNumber
	parsed, err := phonenumbers.Parse(formatted, "")
	if err != nil {
		return MsgInvalidPhoneFormat
	}

	if !phonenumbers.IsValidNumber(parsed) {
		return MsgInvalidPhone
	}

	cc, err := strconv.Atoi(strings.TrimSpace(ccDigits))
	if err != nil || int(parsed.GetCountryCode()) != cc {
		return MsgCountryCodeMismatch
	}

	if !phonePattern.MatchString(phoneNumber) {
		return MsgInvalidPhoneFormat
	}

	return ""
}

// ValidateAdminInput validates admin credentials for the given option.
// Name fields are only considered for the add-admin action.
func ValidateAdminInput(option, firstName, lastName, email, password string) string {
	if email == "" || password == "" {
		return MsgRequiredAdminFields
	}
	if option == AdminOptionAdd && (firstName == "" || lastName == "") {
		return MsgRequiredAdminFields
	}

	if !emailPattern.MatchString(email) {
		return MsgInvalidAdminEmail
	}

	if !isStrongPassword(password) {
		return MsgWeakPassword
	}

	if option == AdminOptionAdd {
		if len(firstName) > maxFieldLength || len(lastName) > maxFieldLength {
			return MsgNameTooLong
		}
	}
	if len(email) > maxFieldLength {
		return MsgEmailTooLong
	}
	if len(password) > maxFieldLength {
		return MsgPasswordTooLong
	}

	return ""
}

// isStrongPassword mirrors the alphanumeric-only rule: at least 4
// characters with one uppercase letter, one lowercase letter and one
// digit. Go's regexp has no lookaheads, so the classes are checked
// explicitly.
func isStrongPassword(password string) bool {
	if len(password) < 4 {
		return false
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r) && r < 128:
			hasUpper = true
		case unicode.IsLower(r) && r < 128:
			hasLower = true
		case unicode.IsDigit(r) && r < 128:
			hasDigit = true
		default:
			return false
		}
	}
	return hasUpper && hasLower && hasDigit
}
