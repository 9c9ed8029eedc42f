// Package email holds address helpers shared by registration flows.
package email

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/asaskevich/govalidator"
)

// addressPattern is the loose shape check the front end also applies.
var addressPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Normalize trims and lowercases an address for storage and lookups.
func Normalize(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// IsValid reports whether address is a plausible, deliverable-looking email.
func IsValid(address string) bool {
	address = strings.TrimSpace(address)
	if !govalidator.StringLength(address, "3", "225") {
		return false
	}
	return addressPattern.MatchString(address) && govalidator.IsEmail(address)
}

// DisplayName returns name when set and otherwise derives one from the
// local part of the address, so greetings never read "Dear ,".
func DisplayName(name, address string) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	first, _ := deriveNameFromEmail(address)
	return first
}

func deriveNameFromEmail(address string) (string, string) {
	localPart := address
	if at := strings.IndexByte(address, '@'); at >= 0 {
		localPart = address[:at]
	}

	parts := strings.FieldsFunc(localPart, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})
	if len(parts) == 0 {
		return "Friend", ""
	}

	first := capitalize(parts[0])
	last := ""
	if len(parts) > 1 {
		last = capitalize(parts[len(parts)-1])
	}
	return first, last
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
