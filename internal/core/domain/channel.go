package domain

// ChannelType identifies the channel family a campaign sends through.
type ChannelType string

const (
	ChannelTelegram ChannelType = "telegram"
	ChannelWhatsApp ChannelType = "whatsapp"
	ChannelWABA     ChannelType = "waba"
	ChannelSMS      ChannelType = "sms"
)

// ChatStyle reports whether the channel addresses recipients by a
// channel-assigned chat id rather than a phone number.
func (c ChannelType) ChatStyle() bool {
	return c == ChannelTelegram
}
