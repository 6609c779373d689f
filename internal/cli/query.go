package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/strand-db/strand/internal/filter"
	"github.com/strand-db/strand/internal/service"
)

// queryFlags holds the raw flag values for the query command. Pointers are
// built only for flags the user actually set, so an unset flag places no
// constraint (a bare "strand query" returns everything).
type queryFlags struct {
	palindrome bool
	minLength  int
	maxLength  int
	wordCount  int
	contains   string
	filterFile string
}

// NewQueryCommand creates the query command for structured filter queries.
func NewQueryCommand(opts *RootOptions) *cobra.Command {
	flags := &queryFlags{}

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query stored strings with structured filters",
		Long: `Query returns stored records matching a conjunction of filters,
newest first. Filters come from flags, from a CUE or JSON filter file,
or both; a flag overrides the same field from the file. Contradictory
bounds (min > max) are rejected before the query runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := buildFilter(cmd, flags)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load filter file", err)
			}

			svc, closer, err := openService(opts)
			if err != nil {
				return err
			}
			defer closer()

			out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

			result, err := svc.Query(cmd.Context(), f)
			if err != nil {
				return out.Failure(err)
			}

			return out.Success(result, func(w io.Writer) {
				printQueryResult(w, result)
			})
		},
	}

	cmd.Flags().BoolVar(&flags.palindrome, "palindrome", false, "match palindromes (=false for non-palindromes)")
	cmd.Flags().IntVar(&flags.minLength, "min-length", 0, "minimum value length in code points")
	cmd.Flags().IntVar(&flags.maxLength, "max-length", 0, "maximum value length in code points")
	cmd.Flags().IntVar(&flags.wordCount, "word-count", 0, "exact word count")
	cmd.Flags().StringVar(&flags.contains, "contains", "", "single character the value must contain (case-insensitive)")
	cmd.Flags().StringVar(&flags.filterFile, "filter-file", "", "CUE or JSON file with filter fields")

	return cmd
}

// buildFilter assembles the filter from the optional file plus any flags
// the user set. Only Changed flags contribute, so zero values stay
// distinguishable from unset.
func buildFilter(cmd *cobra.Command, flags *queryFlags) (filter.Filter, error) {
	var f filter.Filter

	if flags.filterFile != "" {
		loaded, err := LoadFilterFile(flags.filterFile)
		if err != nil {
			return filter.Filter{}, err
		}
		f = loaded
	}

	if cmd.Flags().Changed("palindrome") {
		f.IsPalindrome = filter.Bool(flags.palindrome)
	}
	if cmd.Flags().Changed("min-length") {
		f.MinLength = filter.Int(flags.minLength)
	}
	if cmd.Flags().Changed("max-length") {
		f.MaxLength = filter.Int(flags.maxLength)
	}
	if cmd.Flags().Changed("word-count") {
		f.WordCount = filter.Int(flags.wordCount)
	}
	if cmd.Flags().Changed("contains") {
		f.ContainsCharacter = filter.String(flags.contains)
	}

	return f, nil
}

func printQueryResult(w io.Writer, result service.QueryResult) {
	PrintFilters(w, "filters applied", result.Applied)
	fmt.Fprintf(w, "matches: %d\n", len(result.Records))
	if len(result.Records) > 0 {
		fmt.Fprintln(w)
		PrintRecords(w, result.Records)
	}
}
