// SuiteBot - Slack to webhook relay bridge
// License: MIT

// Package channels contains the platform adapters that deliver inbound
// message events to the bus and expose the outbound posting primitives.
package channels

import (
	"context"

	"github.com/resourceful-ai/suitebot/pkg/bus"
)

// Channel is a platform adapter. Start establishes the real-time
// connection and begins publishing inbound events; Send posts a message
// back into a channel.
type Channel interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Send(ctx context.Context, msg bus.OutboundMessage) error
	IsRunning() bool
}

// Reactor attaches and removes emoji annotations on a specific message.
// Both operations are cosmetic: callers treat failures as non-fatal.
type Reactor interface {
	AddReaction(channelID, timestamp, name string) error
	RemoveReaction(channelID, timestamp, name string) error
}
