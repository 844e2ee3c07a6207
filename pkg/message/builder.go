// pkg/message/builder.go

package message

import (
	"fmt"

	"github.com/maikroservice/wazuh-discord-integration/pkg/alert"
	"github.com/maikroservice/wazuh-discord-integration/pkg/wdi_err"
)

// placeholder stands in for absent descriptions.
const placeholder = "N/A"

// Field is one labeled value of the outgoing message.
type Field struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// Message is the destination-neutral result of one alert conversion.
// Built fresh per invocation, never persisted.
type Message struct {
	Color       Color
	Title       string
	Description string
	Text        string
	Fields      []Field
	Timestamp   string
}

// Build converts an alert into a Message. The transform is pure: identical
// alerts produce identical messages.
func Build(a *alert.Alert) (*Message, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	level := *a.Rule.Level

	m := &Message{
		Color:       ColorForLevel(level),
		Title:       fmt.Sprintf("Alert - Rule %s", a.Rule.ID),
		Description: placeholder,
		Text:        a.FullLog,
		Timestamp:   a.ID,
	}
	if a.Rule.Description != "" {
		m.Description = a.Rule.Description
	}

	// Field order is fixed: agent (or agentless host), then location,
	// then rule reference.
	if a.Agent != nil {
		m.Fields = append(m.Fields, Field{
			Title: "Agent",
			Value: fmt.Sprintf("(%s) - %s", a.Agent.ID, a.Agent.Name),
		})
	} else if a.Agentless != nil {
		m.Fields = append(m.Fields, Field{
			Title: "Agentless Host",
			Value: a.Agentless.Host,
		})
	}
	m.Fields = append(m.Fields,
		Field{Title: "Location", Value: a.Location},
		Field{Title: "Rule ID", Value: fmt.Sprintf("%s (Level %d)", a.Rule.ID, level)},
	)

	if m.empty() {
		return nil, wdi_err.NewEmptyMessageError()
	}
	return m, nil
}

// empty reports whether the message carries nothing worth delivering.
// Title and fields are always populated for a valid alert, so this only
// trips on a future regression.
func (m *Message) empty() bool {
	return m.Title == "" && m.Description == "" && m.Text == "" && len(m.Fields) == 0
}
