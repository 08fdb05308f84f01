// SuiteBot - Slack to webhook relay bridge
// License: MIT

// Package registry maps the tracked Slack channel ids to human-readable
// labels. The mapping is fixed at process start; changing the tracked set
// means redeploying with an updated table.
package registry

// Registry is a read-only channel id -> label lookup. Safe for concurrent
// use once constructed.
type Registry struct {
	channels map[string]string
}

// defaultChannels is the production channel set.
var defaultChannels = map[string]string{
	"C09NEFLB30C": "vision-agent",
	"C09NEFNNXD2": "strategy-agent",
	"C09NAV7HT26": "testing-agent",
	"C09PA0D1ED6": "matching-agent",
	"C09NA0DUTRC": "scheduler-agent",
	"C09PGG5L7AL": "nick-clarity",
	"C09N6NVDWKH": "jordan-clarity",
}

// New builds a Registry from the given mapping. The map is copied so the
// caller cannot mutate the registry afterwards.
func New(channels map[string]string) *Registry {
	m := make(map[string]string, len(channels))
	for id, label := range channels {
		m[id] = label
	}
	return &Registry{channels: m}
}

// Default returns the registry with the compiled-in channel set.
func Default() *Registry {
	return New(defaultChannels)
}

// IsTracked reports whether the channel id belongs to the tracked set.
func (r *Registry) IsTracked(channelID string) bool {
	_, ok := r.channels[channelID]
	return ok
}

// LabelOf returns the label for a tracked channel id. Callers must check
// the second return value; an untracked id yields ("", false).
func (r *Registry) LabelOf(channelID string) (string, bool) {
	label, ok := r.channels[channelID]
	return label, ok
}

// Len returns the number of tracked channels.
func (r *Registry) Len() int {
	return len(r.channels)
}
