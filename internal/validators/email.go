package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid faz uma checagem barata de DNS antes de encaminhar o
// cadastro ao backend: domínio sem MX e sem A dificilmente recebe e-mail.
func IsEmailDomainValid(email string) bool {
	email = strings.TrimSpace(email)

	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
