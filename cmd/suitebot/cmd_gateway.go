// SuiteBot - Slack to webhook relay bridge
// License: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/resourceful-ai/suitebot/pkg/bus"
	"github.com/resourceful-ai/suitebot/pkg/channels"
	"github.com/resourceful-ai/suitebot/pkg/config"
	"github.com/resourceful-ai/suitebot/pkg/gateway"
	"github.com/resourceful-ai/suitebot/pkg/health"
	"github.com/resourceful-ai/suitebot/pkg/logger"
	"github.com/resourceful-ai/suitebot/pkg/registry"
	"github.com/resourceful-ai/suitebot/pkg/utils"
	"github.com/resourceful-ai/suitebot/pkg/webhook"
)

func gatewayCmd() {
	for _, arg := range os.Args[2:] {
		switch arg {
		case "--debug", "-d":
			logger.SetLevel(logger.DEBUG)
			fmt.Println("🔍 Debug mode enabled")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	channelRegistry := registry.Default()

	fmt.Printf("%s SuiteBot starting...\n", logo)
	fmt.Printf("📡 Listening to %d channels\n", channelRegistry.Len())
	fmt.Printf("🔗 Forwarding to: %s\n", utils.Truncate(cfg.WebhookURL, 50))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	healthServer := health.NewServer(cfg.Port)
	healthErr := healthServer.Start()
	fmt.Printf("💚 Health check server on port %d\n", cfg.Port)

	messageBus := bus.NewMessageBus()

	slackChannel, err := channels.NewSlackChannel(cfg.SlackBotToken, cfg.SlackAppToken, messageBus)
	if err != nil {
		fmt.Printf("Error creating slack channel: %v\n", err)
		os.Exit(1)
	}

	manager := channels.NewManager(messageBus)
	manager.Register(slackChannel)

	if err := manager.StartAll(ctx); err != nil {
		fmt.Printf("Error starting channels: %v\n", err)
		os.Exit(1)
	}

	client := webhook.New(cfg.WebhookURL, cfg.WebhookTimeout)
	relay := gateway.New(messageBus, channelRegistry, client, slackChannel)

	relayDone := make(chan error, 1)
	go func() {
		relayDone <- relay.Run(ctx)
	}()

	select {
	case err := <-healthErr:
		// The supervisor restarts processes whose liveness port is gone,
		// so a bind failure is fatal.
		logger.ErrorCF("main", "Liveness listener failed", map[string]interface{}{
			"error": err.Error(),
		})
		stop()
		os.Exit(1)
	case <-ctx.Done():
	}

	logger.InfoC("main", "Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	manager.StopAll(shutdownCtx)
	if err := healthServer.Shutdown(shutdownCtx); err != nil {
		logger.WarnCF("main", "Health server shutdown error", map[string]interface{}{
			"error": err.Error(),
		})
	}
	messageBus.Close()

	select {
	case <-relayDone:
	case <-shutdownCtx.Done():
	}

	logger.InfoC("main", "Goodbye")
}
