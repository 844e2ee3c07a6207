// pkg/message/builder_test.go

package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maikroservice/wazuh-discord-integration/pkg/alert"
	"github.com/maikroservice/wazuh-discord-integration/pkg/options"
)

func intPtr(v int) *int { return &v }

func baseAlert() *alert.Alert {
	return &alert.Alert{
		ID:       "1696269564.123456",
		Rule:     alert.Rule{ID: "100001", Level: intPtr(10)},
		Location: "server1",
	}
}

func TestBuildMinimalAlert(t *testing.T) {
	m, err := Build(baseAlert())
	require.NoError(t, err)

	assert.Equal(t, ColorRed, m.Color)
	assert.Equal(t, "Alert - Rule 100001", m.Title)
	assert.Equal(t, "N/A", m.Description)
	assert.Empty(t, m.Text)
	assert.Equal(t, "1696269564.123456", m.Timestamp)
	assert.Equal(t, []Field{
		{Title: "Location", Value: "server1"},
		{Title: "Rule ID", Value: "100001 (Level 10)"},
	}, m.Fields)
}

func TestBuildWithAgent(t *testing.T) {
	a := baseAlert()
	a.Agent = &alert.Agent{ID: "001", Name: "web01"}

	m, err := Build(a)
	require.NoError(t, err)

	require.Len(t, m.Fields, 3)
	assert.Equal(t, Field{Title: "Agent", Value: "(001) - web01"}, m.Fields[0])
	assert.Equal(t, "Location", m.Fields[1].Title)
	assert.Equal(t, "Rule ID", m.Fields[2].Title)
}

func TestBuildWithAgentlessHost(t *testing.T) {
	a := baseAlert()
	a.Agentless = &alert.Agentless{Host: "h1"}

	m, err := Build(a)
	require.NoError(t, err)

	require.Len(t, m.Fields, 3)
	assert.Equal(t, Field{Title: "Agentless Host", Value: "h1"}, m.Fields[0])
}

func TestBuildAgentTakesPrecedenceOverAgentless(t *testing.T) {
	a := baseAlert()
	a.Agent = &alert.Agent{ID: "001", Name: "web01"}
	a.Agentless = &alert.Agentless{Host: "h1"}

	m, err := Build(a)
	require.NoError(t, err)

	require.Len(t, m.Fields, 3)
	assert.Equal(t, "Agent", m.Fields[0].Title)
}

func TestBuildDescriptionAndFullLog(t *testing.T) {
	a := baseAlert()
	a.Rule.Description = "Possible intrusion attempt"
	a.FullLog = "Oct  2 12:00:00 web01 sshd[123]: Failed password"

	m, err := Build(a)
	require.NoError(t, err)

	assert.Equal(t, "Possible intrusion attempt", m.Description)
	assert.Equal(t, a.FullLog, m.Text)
}

func TestBuildInvalidAlert(t *testing.T) {
	m, err := Build(&alert.Alert{Location: "server1"})
	require.Error(t, err)
	assert.Nil(t, m)
}

func TestFormatDiscordShape(t *testing.T) {
	a := baseAlert()
	a.Agent = &alert.Agent{ID: "001", Name: "web01"}
	a.Rule.Description = "Possible intrusion attempt"

	m, err := Build(a)
	require.NoError(t, err)

	body, err := DiscordFormatter{}.Format(m, nil)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"color": "15548997",
		"title": "Alert - Rule 100001",
		"description": "Possible intrusion attempt",
		"fields": [
			{"title": "Agent", "value": "(001) - web01"},
			{"title": "Location", "value": "server1"},
			{"title": "Rule ID", "value": "100001 (Level 10)"}
		],
		"ts": "1696269564.123456"
	}`, string(body))
}

func TestFormatOmitsEmptyText(t *testing.T) {
	m, err := Build(baseAlert())
	require.NoError(t, err)

	body, err := DiscordFormatter{}.Format(m, nil)
	require.NoError(t, err)
	assert.NotContains(t, string(body), `"text"`)
}

func TestFormatAppliesOverrides(t *testing.T) {
	m, err := Build(baseAlert())
	require.NoError(t, err)

	body, err := DiscordFormatter{}.Format(m, options.Options{
		"color":    "0",
		"username": "wazuh-bot",
	})
	require.NoError(t, err)

	assert.Contains(t, string(body), `"color":"0"`)
	assert.Contains(t, string(body), `"username":"wazuh-bot"`)
	assert.Contains(t, string(body), `"title":"Alert - Rule 100001"`)
}

func TestBuildIsPure(t *testing.T) {
	// identical inputs must serialize byte-identically, with and without
	// overrides in play
	a := baseAlert()
	a.Agent = &alert.Agent{ID: "001", Name: "web01"}
	opts := options.Options{"username": "wazuh-bot"}

	first, err := Build(a)
	require.NoError(t, err)
	second, err := Build(a)
	require.NoError(t, err)

	for _, o := range []options.Options{nil, opts} {
		b1, err := DiscordFormatter{}.Format(first, o)
		require.NoError(t, err)
		b2, err := DiscordFormatter{}.Format(second, o)
		require.NoError(t, err)
		assert.Equal(t, b1, b2)
	}
}
