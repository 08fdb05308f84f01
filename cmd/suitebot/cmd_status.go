// SuiteBot - Slack to webhook relay bridge
// License: MIT

package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/resourceful-ai/suitebot/pkg/registry"
)

func statusCmd() {
	fmt.Printf("%s suitebot Status\n", logo)
	fmt.Printf("Version: %s\n", formatVersion())
	build, _ := formatBuildInfo()
	if build != "" {
		fmt.Printf("Build: %s\n", build)
	}
	fmt.Println()

	status := func(set bool) string {
		if set {
			return "✓"
		}
		return "not set"
	}
	fmt.Println("WEBHOOK_URL:", status(os.Getenv("WEBHOOK_URL") != ""))
	fmt.Println("SLACK_BOT_TOKEN:", status(os.Getenv("SLACK_BOT_TOKEN") != ""))
	fmt.Println("SLACK_APP_TOKEN:", status(os.Getenv("SLACK_APP_TOKEN") != ""))

	fmt.Printf("Tracked channels: %d\n", registry.Default().Len())

	port := 10000
	if p, err := strconv.Atoi(os.Getenv("PORT")); err == nil && p > 0 {
		port = p
	}

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(fmt.Sprintf("http://localhost:%d/", port))
	if err != nil {
		fmt.Printf("Liveness (port %d): not responding\n", port)
		return
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	fmt.Printf("Liveness (port %d): %s %s\n", port, resp.Status, body)
}
