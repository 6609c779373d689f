package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/strand-db/strand/internal/service"
)

// NewAskCommand creates the ask command for natural-language queries.
func NewAskCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <query...>",
		Short: "Query stored strings in natural language",
		Long: `Ask interprets an English query into structured filters and runs it.
Recognized phrasings include "single word", "palindromic", "longer
than N characters", "shorter than N characters", and "containing the
letter x". A query that matches no known phrasing fails with
UNPARSEABLE; one whose derived bounds contradict fails with
CONFLICTING_FILTER.

Example:
  strand ask find all single word palindromic strings`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			svc, closer, err := openService(opts)
			if err != nil {
				return err
			}
			defer closer()

			out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

			result, err := svc.NLQuery(cmd.Context(), query)
			if err != nil {
				return out.Failure(err)
			}

			return out.Success(result, func(w io.Writer) {
				printNLQueryResult(w, result)
			})
		},
	}
}

func printNLQueryResult(w io.Writer, result service.NLQueryResult) {
	fmt.Fprintf(w, "query: %q\n", result.Query)
	PrintFilters(w, "filters derived", result.Derived)
	fmt.Fprintf(w, "matches: %d\n", len(result.Records))
	if len(result.Records) > 0 {
		fmt.Fprintln(w)
		PrintRecords(w, result.Records)
	}
}
