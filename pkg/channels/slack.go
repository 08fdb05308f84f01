// SuiteBot - Slack to webhook relay bridge
// License: MIT

package channels

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"

	"github.com/resourceful-ai/suitebot/pkg/bus"
	"github.com/resourceful-ai/suitebot/pkg/logger"
)

type SlackChannel struct {
	api          *slack.Client
	socketClient *socketmode.Client
	messageBus   bus.Broker
	botUserID    string
	running      atomic.Bool
	ctx          context.Context
	cancel       context.CancelFunc
}

func NewSlackChannel(botToken, appToken string, messageBus bus.Broker) (*SlackChannel, error) {
	if botToken == "" || appToken == "" {
		return nil, fmt.Errorf("slack bot token and app token are required")
	}

	api := slack.New(
		botToken,
		slack.OptionAppLevelToken(appToken),
	)

	return &SlackChannel{
		api:          api,
		socketClient: socketmode.New(api),
		messageBus:   messageBus,
	}, nil
}

func (c *SlackChannel) Name() string {
	return "slack"
}

func (c *SlackChannel) IsRunning() bool {
	return c.running.Load()
}

func (c *SlackChannel) Start(ctx context.Context) error {
	logger.InfoC("slack", "Starting Slack channel (Socket Mode)")

	c.ctx, c.cancel = context.WithCancel(ctx)

	authResp, err := c.api.AuthTest()
	if err != nil {
		return fmt.Errorf("slack auth test failed: %w", err)
	}
	c.botUserID = authResp.UserID

	logger.InfoCF("slack", "Slack bot connected", map[string]interface{}{
		"bot_user_id": c.botUserID,
		"team":        authResp.Team,
	})

	go c.eventLoop()

	go func() {
		if err := c.socketClient.RunContext(c.ctx); err != nil {
			if c.ctx.Err() == nil {
				logger.ErrorCF("slack", "Socket Mode connection error", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
	}()

	c.running.Store(true)
	logger.InfoC("slack", "Slack channel started (Socket Mode)")
	return nil
}

func (c *SlackChannel) Stop(ctx context.Context) error {
	logger.InfoC("slack", "Stopping Slack channel")

	if c.cancel != nil {
		c.cancel()
	}

	c.running.Store(false)
	logger.InfoC("slack", "Slack channel stopped")
	return nil
}

func (c *SlackChannel) Send(ctx context.Context, msg bus.OutboundMessage) error {
	if !c.IsRunning() {
		return fmt.Errorf("slack channel not running")
	}
	if msg.ChannelID == "" {
		return fmt.Errorf("outbound message has no channel id")
	}

	_, _, err := c.api.PostMessageContext(ctx, msg.ChannelID,
		slack.MsgOptionText(msg.Text, false),
	)
	if err != nil {
		return fmt.Errorf("failed to send slack message: %w", err)
	}

	logger.DebugCF("slack", "Message sent", map[string]interface{}{
		"channel_id": msg.ChannelID,
	})

	return nil
}

// AddReaction attaches an emoji to the message identified by channel id
// and timestamp.
func (c *SlackChannel) AddReaction(channelID, timestamp, name string) error {
	return c.api.AddReaction(name, slack.ItemRef{
		Channel:   channelID,
		Timestamp: timestamp,
	})
}

// RemoveReaction removes an emoji from the message identified by channel
// id and timestamp.
func (c *SlackChannel) RemoveReaction(channelID, timestamp, name string) error {
	return c.api.RemoveReaction(name, slack.ItemRef{
		Channel:   channelID,
		Timestamp: timestamp,
	})
}

func (c *SlackChannel) eventLoop() {
	for {
		select {
		case <-c.ctx.Done():
			return
		case event, ok := <-c.socketClient.Events:
			if !ok {
				return
			}
			switch event.Type {
			case socketmode.EventTypeEventsAPI:
				c.handleEventsAPI(event)
			case socketmode.EventTypeInteractive, socketmode.EventTypeSlashCommand:
				if event.Request != nil {
					c.socketClient.Ack(*event.Request)
				}
			}
		}
	}
}

func (c *SlackChannel) handleEventsAPI(event socketmode.Event) {
	if event.Request != nil {
		c.socketClient.Ack(*event.Request)
	}

	eventsAPIEvent, ok := event.Data.(slackevents.EventsAPIEvent)
	if !ok {
		return
	}

	if ev, ok := eventsAPIEvent.InnerEvent.Data.(*slackevents.MessageEvent); ok {
		c.handleMessageEvent(ev)
	}
}

func (c *SlackChannel) handleMessageEvent(ev *slackevents.MessageEvent) {
	msg, ok := inboundFromMessage(ev, c.botUserID)
	if !ok {
		return
	}

	logger.DebugCF("slack", "Received message", map[string]interface{}{
		"channel_id": msg.ChannelID,
		"message_ts": msg.Timestamp,
		"from_bot":   msg.FromBot,
	})

	c.messageBus.PublishInbound(msg)
}

// inboundFromMessage converts a Slack message event into a bus event.
// The bot's own messages are dropped here; everything else is delivered
// and left to the relay filter, which sees bot origin via FromBot.
func inboundFromMessage(ev *slackevents.MessageEvent, botUserID string) (bus.InboundMessage, bool) {
	if botUserID != "" && ev.User == botUserID {
		return bus.InboundMessage{}, false
	}
	if ev.Channel == "" || ev.TimeStamp == "" {
		return bus.InboundMessage{}, false
	}

	return bus.InboundMessage{
		Channel:   "slack",
		ChannelID: ev.Channel,
		Text:      ev.Text,
		Timestamp: ev.TimeStamp,
		FromBot:   ev.BotID != "",
	}, true
}
