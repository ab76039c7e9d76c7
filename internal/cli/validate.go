package cli

import (
	"errors"
	"fmt"

	"github.com/Gunvolt24/sand_conformance/config"
	"github.com/Gunvolt24/sand_conformance/internal/app"
	"github.com/Gunvolt24/sand_conformance/pkg/validate"
	"github.com/spf13/cobra"
)

// NewValidateCommand — офлайн-проверка SAND-сообщений той же схемой, что и сервер.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <path>...",
		Short: "Validate SAND message files against the schema",
		Long: `Validate SAND message files (or every *.xml file in a directory) against the schema.

Use "-" to read a single message from stdin. Exits with a non-zero status if any message is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema := rootOpts.Schema
			if schema == "" {
				cfg, err := config.Load()
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				schema = cfg.Schema.Path
			}

			validator, err := app.LoadValidator(schema)
			if err != nil {
				return err
			}
			defer validator.Close()

			return runValidate(cmd, validator, args)
		},
	}

	return cmd
}

func runValidate(cmd *cobra.Command, validator *validate.SchemaValidator, paths []string) error {
	out := cmd.OutOrStdout()

	var total validate.Summary
	for _, path := range paths {
		if path == "-" {
			ok, err := validate.ValidateReader(cmd.Context(), validator, "<stdin>", cmd.InOrStdin(), out)
			if err != nil {
				return err
			}
			if ok {
				total.Valid++
			} else {
				total.Invalid++
			}
			continue
		}

		sum, err := validate.ValidateFile(cmd.Context(), validator, path, out)
		total.Valid += sum.Valid
		total.Invalid += sum.Invalid
		if err != nil && !errors.Is(err, validate.ErrInvalidMessage) {
			return err
		}
	}

	fmt.Fprintln(out, total.String())
	if total.Invalid > 0 {
		return fmt.Errorf("%w: %s", validate.ErrInvalidMessage, total)
	}
	return nil
}
