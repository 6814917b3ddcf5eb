package configs

import "time"

// Channels configures the channel gateway webhooks the adapters post to.
// ChatURL serves chat-style channels (telegram); PhoneURL serves
// phone-style channels (whatsapp, waba, sms).
type Channels struct {
	ChatURL  string        `env:"CHAT_WEBHOOK_URL" envDefault:"http://localhost:9081/send"`
	PhoneURL string        `env:"PHONE_WEBHOOK_URL" envDefault:"http://localhost:9082/send"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"10s"`
}
