// Пакет cli — команды sand-server: run (HTTP-сервер) и validate (офлайн-проверка файлов).
package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions — общие флаги всех команд.
type RootOptions struct {
	Schema string // путь к XSD; пусто — SANDCONF_SCHEMA_XSD_PATH или встроенная схема
}

// NewRootCommand — корневая команда sand-server.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "sand-server",
		Short: "SAND conformance server",
		Long: `Conformance checker for SAND (ISO/IEC 23009-5) clients.

POST /metrics validates a SAND message, GET /headers checks SAND header syntax.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Schema, "schema", "", "path to SAND messages XSD (default: embedded schema)")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))

	return cmd
}
