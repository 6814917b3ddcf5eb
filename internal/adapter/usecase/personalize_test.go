package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"omniflow-broadcast/internal/core/domain"
)

func TestPersonalize(t *testing.T) {
	contact := domain.Contact{Name: "Ana", Phone: "11999990000", Email: "ana@example.com"}

	tests := []struct {
		name     string
		template string
		contact  domain.Contact
		want     string
	}{
		{
			name:     "all placeholders",
			template: "Olá {{nome}}, confirmamos {{telefone}} e {{email}}.",
			contact:  contact,
			want:     "Olá Ana, confirmamos 11999990000 e ana@example.com.",
		},
		{
			name:     "repeated placeholder",
			template: "{{nome}} {{nome}}",
			contact:  contact,
			want:     "Ana Ana",
		},
		{
			name:     "missing fields substitute empty",
			template: "Olá {{nome}}, email: {{email}}",
			contact:  domain.Contact{Phone: "11999990000"},
			want:     "Olá , email: ",
		},
		{
			name:     "no placeholders",
			template: "mensagem fixa",
			contact:  contact,
			want:     "mensagem fixa",
		},
		{
			name:     "unknown placeholder left alone",
			template: "Olá {{apelido}}",
			contact:  contact,
			want:     "Olá {{apelido}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Personalize(tt.template, tt.contact))
		})
	}
}
