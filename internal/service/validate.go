package service

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// consumerEmailDomains lists providers rejected by the company-email
// policy on the contact form.
var consumerEmailDomains = map[string]struct{}{
	"gmail.com": {}, "googlemail.com": {},
	"yahoo.com": {}, "yahoo.co.uk": {}, "yahoo.fr": {}, "yahoo.de": {}, "yahoo.es": {}, "yahoo.it": {},
	"hotmail.com": {}, "hotmail.co.uk": {}, "hotmail.fr": {}, "hotmail.es": {}, "live.com": {}, "live.co.uk": {},
	"outlook.com": {}, "outlook.co.uk": {}, "msn.com": {}, "passport.com": {},
	"icloud.com": {}, "me.com": {}, "mac.com": {},
	"aol.com": {}, "aim.com": {},
	"mail.com": {}, "email.com": {}, "protonmail.com": {}, "proton.me": {}, "pm.me": {},
	"zoho.com": {}, "yandex.com": {}, "yandex.ru": {}, "yandex.ua": {},
	"gmx.com": {}, "gmx.net": {}, "gmx.de": {}, "inbox.com": {}, "mail.ru": {}, "rambler.ru": {},
	"fastmail.com": {}, "tutanota.com": {}, "hey.com": {}, "disroot.org": {},
}

func isValidEmail(value string) bool {
	return emailPattern.MatchString(strings.TrimSpace(value))
}

func isCompanyEmail(email string) bool {
	parts := strings.Split(strings.TrimSpace(email), "@")
	if len(parts) != 2 {
		return false
	}
	domain := strings.ToLower(parts[1])
	_, consumer := consumerEmailDomains[domain]
	return domain != "" && !consumer
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
