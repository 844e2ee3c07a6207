// pkg/wdi_cli/wrap.go

package wdi_cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/maikroservice/wazuh-discord-integration/pkg/invocation"
	"github.com/maikroservice/wazuh-discord-integration/pkg/logger"
	"github.com/maikroservice/wazuh-discord-integration/pkg/wdi_io"
)

// Wrap adapts a pipeline function into a cobra RunE: it builds the
// run-scoped logger (debug is decided by the argument contract before
// anything else runs), the runtime context, and guarantees panic recovery
// and an outcome log.
func Wrap(fn func(rc *wdi_io.RuntimeContext, cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		log := logger.New(logger.Config{
			Root:  logger.DefaultRoot(),
			Debug: invocation.DebugEnabled(args),
		})
		defer func() { _ = log.Sync() }()

		rc := wdi_io.NewContext(context.Background(), log, cmd.Name())
		defer rc.End(&err)
		defer rc.HandlePanic(&err)

		return fn(rc, cmd, args)
	}
}
