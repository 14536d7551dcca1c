package notify

import "strings"

// WhatsAppLink builds a wa.me deep link for a phone number, keeping
// digits only so numbers entered as "+92 300-1234567" still resolve.
func WhatsAppLink(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return "https://wa.me/" + digits.String()
}
