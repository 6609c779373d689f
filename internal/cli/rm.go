package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewRemoveCommand creates the rm command. Deletion is by value, mirroring
// get; removing an absent value fails with NOT_FOUND.
func NewRemoveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <value>",
		Short: "Delete the stored record for a string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closer, err := openService(opts)
			if err != nil {
				return err
			}
			defer closer()

			out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

			if err := svc.Delete(cmd.Context(), args[0]); err != nil {
				return out.Failure(err)
			}

			return out.Success(map[string]any{"deleted": true}, func(w io.Writer) {
				fmt.Fprintln(w, "deleted")
			})
		},
	}
}
