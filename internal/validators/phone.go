package validators

import (
	"regexp"
	"strings"
)

var (
	phoneCleanup = regexp.MustCompile(`[^\d+]`)
	bgMobile     = regexp.MustCompile(`^[89]\d{8}$`)
	bgE164       = regexp.MustCompile(`^\+359[0-9]{8,9}$`)
)

// FormatToE164 normalizes a Bulgarian phone number to +359... form.
// Already-international numbers pass through unchanged.
func FormatToE164(phone string) string {
	if phone == "" {
		return ""
	}

	cleaned := phoneCleanup.ReplaceAllString(phone, "")

	if strings.HasPrefix(cleaned, "+") {
		return cleaned
	}

	if strings.HasPrefix(cleaned, "0") {
		return "+359" + cleaned[1:]
	}

	if bgMobile.MatchString(cleaned) {
		return "+359" + cleaned
	}

	return cleaned
}

func IsValidBulgarianPhone(phone string) bool {
	return bgE164.MatchString(FormatToE164(phone))
}
