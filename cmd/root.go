/* cmd/root.go */

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maikroservice/wazuh-discord-integration/pkg/alert"
	"github.com/maikroservice/wazuh-discord-integration/pkg/invocation"
	"github.com/maikroservice/wazuh-discord-integration/pkg/logger"
	"github.com/maikroservice/wazuh-discord-integration/pkg/message"
	"github.com/maikroservice/wazuh-discord-integration/pkg/options"
	"github.com/maikroservice/wazuh-discord-integration/pkg/wdi_cli"
	"github.com/maikroservice/wazuh-discord-integration/pkg/wdi_err"
	"github.com/maikroservice/wazuh-discord-integration/pkg/wdi_io"
	"github.com/maikroservice/wazuh-discord-integration/pkg/webhook"
)

// RootCmd is the integration entry point. wazuh-analysisd spawns one
// process per alert with a fixed positional contract, so there are no
// flags to declare.
var RootCmd = &cobra.Command{
	Use:   "wazuh-discord <alert_file> <user> <hook_url> [debug|options_file] [options_file]",
	Short: "Forward a Wazuh alert to a Discord webhook",
	Long: `wazuh-discord is a Wazuh custom integration: it reads the JSON alert
wazuh-analysisd wrote for one security event, converts it into a Discord
webhook payload, delivers it with a single POST, and records the run in
the shared integrations log.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: wdi_cli.Wrap(func(rc *wdi_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		return Run(rc, args, logger.DefaultRoot(), webhook.NewClient(rc.Log), message.DiscordFormatter{})
	}),
}

// Run executes the conversion-and-delivery pipeline for one alert.
// root, client and formatter are injected so tests can point the run at
// temp directories and local servers.
func Run(rc *wdi_io.RuntimeContext, args []string, root string, client *webhook.Client, formatter message.Formatter) error {
	// The raw invocation line is recorded on every run, including the
	// malformed-argument marker, before anything can fail.
	if err := logger.AppendRaw(root, invocation.LogLine(args)); err != nil {
		rc.Log.Warn("Could not record invocation", zap.Error(err))
	}

	inv, err := invocation.Parse(args)
	if err != nil {
		rc.Log.Debug("# ERROR: Exiting, bad arguments", zap.Strings("args", args))
		return err
	}

	rc.Log.Debug("# Running Discord integration", zap.String("user", inv.User))

	a, err := alert.Load(inv.AlertPath)
	if err != nil {
		rc.Log.Debug("# ERROR: Failed getting JSON alert", zap.Error(err))
		return err
	}
	rc.Log.Debug("# Opened alert file", zap.String("path", inv.AlertPath))

	opts, err := options.Load(inv.OptionsPath)
	if err != nil {
		rc.Log.Debug("# ERROR: Failed getting JSON options", zap.Error(err))
		return err
	}
	rc.Log.Debug("# Opened options file",
		zap.String("path", inv.OptionsPath),
		zap.Int("overrides", len(opts)),
	)

	rc.Log.Debug("# Generating message")
	m, err := message.Build(a)
	if err != nil {
		rc.Log.Debug("# ERROR: Could not generate message", zap.Error(err))
		return err
	}

	body, err := formatter.Format(m, opts)
	if err != nil {
		return err
	}

	rc.Log.Debug("# Sending message", zap.ByteString("payload", body))
	return client.Send(rc.Ctx, inv.HookURL, body)
}

// Execute runs the root command and translates the outcome into the
// process exit code. This is the only place the process exits.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(wdi_err.GetExitCode(err))
	}
}
