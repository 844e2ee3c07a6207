// pkg/options/options.go
//
// The optional overrides document. Operators drop a JSON file next to the
// integration (path ending in "options") to override or extend fields of
// the outgoing payload. Absence is a legitimate, silent default.

package options

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/viper"

	"github.com/maikroservice/wazuh-discord-integration/pkg/wdi_err"
)

// Options is the loosely-structured overrides record. Keys are lowercased
// by the config loader, which matches the lowercase payload field names.
type Options map[string]any

// Load reads the overrides document at path.
// An empty path or a missing file yields an empty record with no error;
// a file that exists but is not valid JSON is fatal.
func Load(path string) (Options, error) {
	if path == "" {
		return Options{}, nil
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Options{}, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, wdi_err.NewInvalidJSONError(path, err)
	}

	return Options(v.AllSettings()), nil
}

// Apply merges the overrides over a payload document, top-level key by
// top-level key. Existing keys are replaced, new keys are added.
func (o Options) Apply(payload map[string]any) {
	for k, v := range o {
		payload[k] = v
	}
}
