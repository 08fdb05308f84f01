// SuiteBot - Slack to webhook relay bridge
// License: MIT

package channels

import (
	"context"
	"sync"

	"github.com/resourceful-ai/suitebot/pkg/bus"
	"github.com/resourceful-ai/suitebot/pkg/logger"
)

// Manager owns the registered channels and routes outbound messages from
// the bus to the channel that should post them.
type Manager struct {
	messageBus bus.Broker
	channels   map[string]Channel
	mu         sync.RWMutex
}

func NewManager(messageBus bus.Broker) *Manager {
	return &Manager{
		messageBus: messageBus,
		channels:   make(map[string]Channel),
	}
}

func (m *Manager) Register(ch Channel) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.channels[ch.Name()] = ch
}

func (m *Manager) GetChannel(name string) (Channel, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ch, ok := m.channels[name]
	return ch, ok
}

func (m *Manager) GetEnabledChannels() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.channels))
	for name := range m.channels {
		names = append(names, name)
	}
	return names
}

// StartAll starts every registered channel and the outbound dispatcher.
// A channel that fails to start aborts startup; the real-time connection
// is mandatory.
func (m *Manager) StartAll(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for name, ch := range m.channels {
		logger.InfoCF("channels", "Starting channel", map[string]interface{}{
			"channel": name,
		})
		if err := ch.Start(ctx); err != nil {
			return err
		}
	}

	go m.dispatchOutbound(ctx)
	return nil
}

func (m *Manager) StopAll(ctx context.Context) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for name, ch := range m.channels {
		if err := ch.Stop(ctx); err != nil {
			logger.ErrorCF("channels", "Error stopping channel", map[string]interface{}{
				"channel": name,
				"error":   err.Error(),
			})
		}
	}
}

func (m *Manager) dispatchOutbound(ctx context.Context) {
	for {
		msg, ok := m.messageBus.SubscribeOutbound(ctx)
		if !ok {
			return
		}

		ch, exists := m.GetChannel(msg.Channel)
		if !exists {
			logger.WarnCF("channels", "Outbound message for unknown channel", map[string]interface{}{
				"channel": msg.Channel,
			})
			continue
		}

		if err := ch.Send(ctx, msg); err != nil {
			logger.ErrorCF("channels", "Failed to send message", map[string]interface{}{
				"channel":    msg.Channel,
				"channel_id": msg.ChannelID,
				"error":      err.Error(),
			})
		}
	}
}
