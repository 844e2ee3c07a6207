// pkg/invocation/invocation.go
//
// Parsing of the positional argument contract wazuh-analysisd uses when
// spawning a custom integration:
//
//	<alert_file> <user:secondary> <hook_url> [debug|*options] [*options]

package invocation

import (
	"strings"

	"github.com/maikroservice/wazuh-discord-integration/pkg/wdi_err"
)

// optionsSuffix marks an optional argument as the overrides document path.
const optionsSuffix = "options"

// badArgumentsMarker is appended to the invocation log when the argument
// contract is violated.
const badArgumentsMarker = "# ERROR: Wrong arguments"

// Invocation is the parsed argument set of one integration run.
type Invocation struct {
	AlertPath   string
	User        string // portion of argv 2 before ':', accepted but unused downstream
	HookURL     string
	Debug       bool
	OptionsPath string // empty when no optional argument ends in "options"
}

// Parse validates and decodes the argument list (excluding the binary name).
func Parse(args []string) (*Invocation, error) {
	if len(args) < 3 {
		return nil, wdi_err.NewBadArgumentsError(
			"wrong number of arguments",
			"usage: wazuh-discord <alert_file> <user> <hook_url> [debug|options_file]",
		)
	}

	inv := &Invocation{
		AlertPath: args[0],
		User:      strings.SplitN(args[1], ":", 2)[0],
		HookURL:   args[2],
		Debug:     DebugEnabled(args),
	}

	// First optional argument ending in "options" wins.
	for _, arg := range args[3:] {
		if strings.HasSuffix(arg, optionsSuffix) {
			inv.OptionsPath = arg
			break
		}
	}

	return inv, nil
}

// DebugEnabled reports whether the first optional argument is the literal
// "debug". Safe to call before full parsing.
func DebugEnabled(args []string) bool {
	return len(args) > 3 && args[3] == "debug"
}

// LogLine renders the raw invocation line appended to the integrations log
// on every run: the first five argument slots space-joined, empty slots
// included, or the error marker when too few arguments were supplied.
func LogLine(args []string) string {
	if len(args) < 3 {
		return badArgumentsMarker
	}

	slots := make([]string, 5)
	for i := 0; i < 5 && i < len(args); i++ {
		slots[i] = args[i]
	}
	return strings.Join(slots, " ")
}
