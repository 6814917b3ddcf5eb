package domain

// Contact is an addressable person belonging to a tenant. The broadcast
// engine only reads contacts; ownership lives with the wider platform.
type Contact struct {
	ID       string
	TenantID string
	Name     string
	Phone    string
	Email    string
	ChatID   string // chat-style channel identity, e.g. a telegram chat
	Tags     []string
}

// HasAnyTag reports whether the contact carries at least one of the
// required tags. An empty required set matches every contact.
func (c Contact) HasAnyTag(required []string) bool {
	if len(required) == 0 {
		return true
	}
	for _, want := range required {
		for _, have := range c.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}
