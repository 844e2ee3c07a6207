// pkg/message/discord.go

package message

import (
	"encoding/json"

	cerr "github.com/cockroachdb/errors"

	"github.com/maikroservice/wazuh-discord-integration/pkg/options"
)

// DiscordFormatter renders the Discord webhook payload shape.
type DiscordFormatter struct{}

type discordPayload struct {
	Color       string  `json:"color"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Text        string  `json:"text,omitempty"`
	Fields      []Field `json:"fields"`
	TS          string  `json:"ts"`
}

// Format serializes m, applying any overrides from the options document.
// Serialization is deterministic either way (struct field order without
// overrides, sorted map keys with), so identical inputs yield identical
// bytes.
func (DiscordFormatter) Format(m *Message, opts options.Options) ([]byte, error) {
	p := discordPayload{
		Color:       string(m.Color),
		Title:       m.Title,
		Description: m.Description,
		Text:        m.Text,
		Fields:      m.Fields,
		TS:          m.Timestamp,
	}

	if len(opts) == 0 {
		body, err := json.Marshal(p)
		if err != nil {
			return nil, cerr.Wrap(err, "marshaling discord payload")
		}
		return body, nil
	}

	// Route through a map so option keys can override or extend the
	// top-level payload fields.
	base, err := json.Marshal(p)
	if err != nil {
		return nil, cerr.Wrap(err, "marshaling discord payload")
	}
	doc := make(map[string]any)
	if err := json.Unmarshal(base, &doc); err != nil {
		return nil, cerr.Wrap(err, "reshaping discord payload")
	}
	opts.Apply(doc)

	body, err := json.Marshal(doc)
	if err != nil {
		return nil, cerr.Wrap(err, "marshaling discord payload with overrides")
	}
	return body, nil
}
