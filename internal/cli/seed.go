package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/strand-db/strand/internal/store"
)

// seedResult summarizes a corpus ingest.
type seedResult struct {
	Total      int          `json:"total"`
	Created    int          `json:"created"`
	Duplicates int          `json:"duplicates"`
	Stored     int64        `json:"stored"`
	Rejected   []seedReject `json:"rejected,omitempty"`
}

// seedReject records one corpus entry the analyzer refused.
type seedReject struct {
	Index int    `json:"index"`
	Code  string `json:"code"`
	Error string `json:"error"`
}

// NewSeedCommand creates the seed command for bulk corpus ingest.
func NewSeedCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <corpus-file>",
		Short: "Bulk-load values from a CUE or JSON corpus file",
		Long: `Seed loads every entry of the corpus file's "values" list. Entries
already present count as duplicates rather than errors, so re-running
seed on the same corpus is a no-op. Non-string entries are reported
per index and skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := LoadCorpus(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load corpus", err)
			}

			svc, closer, err := openService(opts)
			if err != nil {
				return err
			}
			defer closer()

			result := seedResult{Total: len(values)}
			for i, v := range values {
				_, err := svc.Create(cmd.Context(), v)
				switch {
				case err == nil:
					result.Created++
				case store.IsConflict(err):
					result.Duplicates++
				default:
					code, _ := Classify(err)
					result.Rejected = append(result.Rejected, seedReject{
						Index: i,
						Code:  code,
						Error: err.Error(),
					})
				}
			}

			stored, err := svc.Count(cmd.Context())
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to count records", err)
			}
			result.Stored = stored

			out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
			return out.Success(result, func(w io.Writer) {
				printSeedResult(w, result)
			})
		},
	}
}

func printSeedResult(w io.Writer, result seedResult) {
	fmt.Fprintf(w, "total:      %d\n", result.Total)
	fmt.Fprintf(w, "created:    %d\n", result.Created)
	fmt.Fprintf(w, "duplicates: %d\n", result.Duplicates)
	fmt.Fprintf(w, "stored:     %d\n", result.Stored)
	for _, r := range result.Rejected {
		fmt.Fprintf(w, "rejected:   entry %d [%s]: %s\n", r.Index, r.Code, r.Error)
	}
}
