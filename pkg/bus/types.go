package bus

// InboundMessage is one message event delivered by a channel adapter.
// Timestamp is the platform message timestamp, used as the reaction
// target for progress annotations.
type InboundMessage struct {
	Channel   string `json:"channel"`
	ChannelID string `json:"channel_id"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
	FromBot   bool   `json:"from_bot"`
}

// OutboundMessage is a reply to post back into a channel.
type OutboundMessage struct {
	Channel   string `json:"channel"`
	ChannelID string `json:"channel_id"`
	Text      string `json:"text"`
}
