package cli

import (
	"io"

	"github.com/spf13/cobra"
)

// NewAddCommand creates the add command. It stores a value, failing when
// the same value is already present.
func NewAddCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <value>",
		Short: "Store a string with its derived properties",
		Long: `Add analyzes a string and stores the record under its SHA-256
identity. Adding a value that already exists fails with CONFLICT; the
existing record is left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closer, err := openService(opts)
			if err != nil {
				return err
			}
			defer closer()

			out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

			rec, err := svc.Create(cmd.Context(), args[0])
			if err != nil {
				return out.Failure(err)
			}

			return out.Success(rec, func(w io.Writer) {
				PrintRecord(w, rec)
			})
		},
	}
}
