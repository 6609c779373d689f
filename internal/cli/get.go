package cli

import (
	"io"

	"github.com/spf13/cobra"
)

// NewGetCommand creates the get command. Lookup is by value, not by id:
// the identity is derived from the argument, so no separate id round-trip
// is needed.
func NewGetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <value>",
		Short: "Retrieve the stored record for a string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closer, err := openService(opts)
			if err != nil {
				return err
			}
			defer closer()

			out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

			rec, err := svc.GetByValue(cmd.Context(), args[0])
			if err != nil {
				return out.Failure(err)
			}

			return out.Success(rec, func(w io.Writer) {
				PrintRecord(w, rec)
			})
		},
	}
}
