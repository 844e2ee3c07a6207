// pkg/webhook/client.go

package webhook

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/maikroservice/wazuh-discord-integration/pkg/wdi_err"
)

// responseLogLimit caps how much of the webhook response reaches the
// trace log.
const responseLogLimit = 4096

// Client performs the single webhook POST of one integration run.
// No retries, no status-code classification: the call either transmits
// or fails at the transport.
type Client struct {
	http *http.Client
	log  *zap.Logger
}

// NewClient returns a Client tracing through log.
func NewClient(log *zap.Logger) *Client {
	return &Client{
		http: &http.Client{},
		log:  log,
	}
}

// Send delivers body to url with content-type application/json.
func (c *Client) Send(ctx context.Context, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return wdi_err.NewDeliveryError(err)
	}
	req.Header.Set("content-type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return wdi_err.NewDeliveryError(err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, responseLogLimit))
	c.log.Debug("# Response received",
		zap.Int("status", resp.StatusCode),
		zap.ByteString("body", respBody),
	)
	return nil
}
