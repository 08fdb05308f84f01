// SuiteBot - Slack to webhook relay bridge
// License: MIT

package channels

import (
	"context"
	"testing"
	"time"

	"github.com/resourceful-ai/suitebot/pkg/bus"
)

type fakeChannel struct {
	name    string
	running bool
	sent    chan bus.OutboundMessage
}

func newFakeChannel(name string) *fakeChannel {
	return &fakeChannel{name: name, sent: make(chan bus.OutboundMessage, 10)}
}

func (f *fakeChannel) Name() string                        { return f.name }
func (f *fakeChannel) Start(ctx context.Context) error     { f.running = true; return nil }
func (f *fakeChannel) Stop(ctx context.Context) error      { f.running = false; return nil }
func (f *fakeChannel) IsRunning() bool                     { return f.running }
func (f *fakeChannel) Send(ctx context.Context, msg bus.OutboundMessage) error {
	f.sent <- msg
	return nil
}

func TestManagerDispatchesOutbound(t *testing.T) {
	messageBus := bus.NewMessageBus()
	defer messageBus.Close()

	m := NewManager(messageBus)
	ch := newFakeChannel("slack")
	m.Register(ch)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := m.StartAll(ctx); err != nil {
		t.Fatalf("StartAll() error = %v", err)
	}
	defer m.StopAll(ctx)

	want := bus.OutboundMessage{Channel: "slack", ChannelID: "C001", Text: "reply"}
	messageBus.PublishOutbound(want)

	select {
	case got := <-ch.sent:
		if got != want {
			t.Errorf("Send() got %+v, want %+v", got, want)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for outbound dispatch")
	}
}

func TestManagerUnknownChannelDoesNotBlock(t *testing.T) {
	messageBus := bus.NewMessageBus()
	defer messageBus.Close()

	m := NewManager(messageBus)
	ch := newFakeChannel("slack")
	m.Register(ch)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := m.StartAll(ctx); err != nil {
		t.Fatalf("StartAll() error = %v", err)
	}

	messageBus.PublishOutbound(bus.OutboundMessage{Channel: "discord", ChannelID: "X", Text: "lost"})
	messageBus.PublishOutbound(bus.OutboundMessage{Channel: "slack", ChannelID: "C001", Text: "kept"})

	select {
	case got := <-ch.sent:
		if got.Text != "kept" {
			t.Errorf("Send() got %q, want %q", got.Text, "kept")
		}
	case <-time.After(time.Second):
		t.Fatal("dispatcher stalled on unknown channel")
	}
}

func TestManagerGetEnabledChannels(t *testing.T) {
	m := NewManager(bus.NewMessageBus())
	m.Register(newFakeChannel("slack"))

	names := m.GetEnabledChannels()
	if len(names) != 1 || names[0] != "slack" {
		t.Errorf("GetEnabledChannels() = %v, want [slack]", names)
	}

	if _, ok := m.GetChannel("slack"); !ok {
		t.Error("GetChannel(slack) not found")
	}
	if _, ok := m.GetChannel("discord"); ok {
		t.Error("GetChannel(discord) unexpectedly found")
	}
}
