// pkg/message/formatter.go

package message

import "github.com/maikroservice/wazuh-discord-integration/pkg/options"

// Formatter serializes a Message into the wire payload of one destination.
// The alert and options loaders never see payload shapes, so adding a
// target means adding a Formatter, nothing else.
type Formatter interface {
	Format(m *Message, opts options.Options) ([]byte, error)
}
