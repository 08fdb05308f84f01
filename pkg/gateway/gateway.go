// SuiteBot - Slack to webhook relay bridge
// License: MIT

// Package gateway runs the relay loop: it consumes inbound message
// events, filters them against the channel registry, forwards the rest
// to the automation webhook and posts the reply back. Progress is shown
// with an hourglass reaction that becomes a checkmark on success.
package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/resourceful-ai/suitebot/pkg/bus"
	"github.com/resourceful-ai/suitebot/pkg/channels"
	"github.com/resourceful-ai/suitebot/pkg/logger"
	"github.com/resourceful-ai/suitebot/pkg/registry"
	"github.com/resourceful-ai/suitebot/pkg/utils"
	"github.com/resourceful-ai/suitebot/pkg/webhook"
)

const (
	reactionThinking = "hourglass_flowing_sand"
	reactionDone     = "white_check_mark"
)

// Forwarder sends a message to the automation endpoint and returns the
// reply text. Implemented by webhook.Client.
type Forwarder interface {
	Forward(ctx context.Context, channelID, messageText string) (string, error)
}

type Gateway struct {
	bus       bus.Broker
	registry  *registry.Registry
	forwarder Forwarder
	reactor   channels.Reactor
}

func New(b bus.Broker, reg *registry.Registry, forwarder Forwarder, reactor channels.Reactor) *Gateway {
	return &Gateway{
		bus:       b,
		registry:  reg,
		forwarder: forwarder,
		reactor:   reactor,
	}
}

// Run consumes the inbound bus until ctx is done. Each event is handled
// to completion, including the blocking webhook call, before the next
// one is taken; no failure of a single event stops the loop.
func (g *Gateway) Run(ctx context.Context) error {
	logger.InfoCF("gateway", "Relay loop started", map[string]interface{}{
		"channels": g.registry.Len(),
	})

	for {
		msg, ok := g.bus.ConsumeInbound(ctx)
		if !ok {
			return nil
		}
		g.handleMessage(ctx, msg)
	}
}

func (g *Gateway) handleMessage(ctx context.Context, msg bus.InboundMessage) {
	// Bot-originated messages never make it past here; forwarding them
	// would feed the bot's own replies back into the webhook.
	if msg.FromBot {
		logger.DebugCF("gateway", "Ignoring bot message", map[string]interface{}{
			"channel_id": msg.ChannelID,
		})
		return
	}

	label, tracked := g.registry.LabelOf(msg.ChannelID)
	if !tracked {
		logger.DebugCF("gateway", "Ignoring untracked channel", map[string]interface{}{
			"channel_id": msg.ChannelID,
		})
		return
	}

	eventID := uuid.NewString()
	logger.InfoCF("gateway", "Message in #"+label, map[string]interface{}{
		"event_id": eventID,
		"preview":  utils.Truncate(msg.Text, 50),
	})

	if err := g.reactor.AddReaction(msg.ChannelID, msg.Timestamp, reactionThinking); err != nil {
		logger.ErrorCF("gateway", "Could not add reaction", map[string]interface{}{
			"event_id": eventID,
			"error":    err.Error(),
		})
	}

	reply, err := g.forwarder.Forward(ctx, msg.ChannelID, msg.Text)
	if err != nil {
		g.resolveFailure(msg, label, eventID, err)
		return
	}

	g.post(msg, reply)

	// Swap hourglass for checkmark. Purely cosmetic, so failures are
	// ignored; if the removal fails the checkmark is not attempted.
	if err := g.reactor.RemoveReaction(msg.ChannelID, msg.Timestamp, reactionThinking); err == nil {
		_ = g.reactor.AddReaction(msg.ChannelID, msg.Timestamp, reactionDone)
	}

	logger.InfoCF("gateway", "Response sent to #"+label, map[string]interface{}{
		"event_id": eventID,
	})
}

// resolveFailure turns a webhook failure into a user-visible channel
// message. The bridge never fails silently from the channel's point of
// view, even though it never retries.
func (g *Gateway) resolveFailure(msg bus.InboundMessage, label, eventID string, err error) {
	var httpErr *webhook.HTTPError

	switch {
	case errors.Is(err, webhook.ErrTimeout):
		g.post(msg, "⏰ Request timed out - the webhook took too long. Try again?")
		logger.ErrorCF("gateway", "Webhook timeout", map[string]interface{}{
			"event_id": eventID,
			"channel":  label,
		})

	case errors.As(err, &httpErr):
		g.post(msg, fmt.Sprintf("⚠️ Webhook returned error: %d", httpErr.StatusCode))
		logger.ErrorCF("gateway", "Webhook error response", map[string]interface{}{
			"event_id": eventID,
			"channel":  label,
			"status":   httpErr.StatusCode,
			"body":     utils.Truncate(httpErr.Body, 200),
		})

	default:
		g.post(msg, fmt.Sprintf("❌ Error connecting to AI: %v", err))
		logger.ErrorCF("gateway", "Webhook call failed", map[string]interface{}{
			"event_id": eventID,
			"channel":  label,
			"error":    err.Error(),
		})
	}
}

func (g *Gateway) post(msg bus.InboundMessage, text string) {
	g.bus.PublishOutbound(bus.OutboundMessage{
		Channel:   msg.Channel,
		ChannelID: msg.ChannelID,
		Text:      text,
	})
}
