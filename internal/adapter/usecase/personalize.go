package usecase

import (
	"strings"

	"omniflow-broadcast/internal/core/domain"
)

// Personalize substitutes the contact placeholders into a message
// template. Missing contact fields substitute the empty string.
func Personalize(template string, c domain.Contact) string {
	r := strings.NewReplacer(
		"{{nome}}", c.Name,
		"{{telefone}}", c.Phone,
		"{{email}}", c.Email,
	)
	return r.Replace(template)
}
