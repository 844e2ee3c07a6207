// pkg/alert/loader.go

package alert

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	cerr "github.com/cockroachdb/errors"

	"github.com/maikroservice/wazuh-discord-integration/pkg/wdi_err"
)

// Load reads and decodes the alert file wazuh-analysisd wrote for this run.
// A missing file and malformed JSON are classified separately so the CLI
// boundary can exit with the code the integration daemon expects.
func Load(path string) (*Alert, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, wdi_err.NewFileNotFoundError(path, err)
		}
		return nil, cerr.Wrapf(err, "reading alert file %s", path)
	}

	var a Alert
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, wdi_err.NewInvalidJSONError(path, err)
	}
	return &a, nil
}
