package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/strand-db/strand/internal/analysis"
)

// analyzeResult is the payload for the analyze command.
type analyzeResult struct {
	ID         string              `json:"id"`
	Value      string              `json:"value"`
	Properties analysis.Properties `json:"properties"`
}

// NewAnalyzeCommand creates the analyze command. It derives the identity
// and properties of a value without touching the database.
func NewAnalyzeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <value>",
		Short: "Compute the identity and properties of a string",
		Long: `Analyze computes the SHA-256 identity and the derived properties
(length, palindromicity, unique characters, word count, character
frequency) of a string without storing anything. The same value always
produces the same output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, props := analysis.Analyze(args[0])

			out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
			result := analyzeResult{ID: id, Value: args[0], Properties: props}
			return out.Success(result, func(w io.Writer) {
				printProperties(w, id, args[0], props)
			})
		},
	}
}

func printProperties(w io.Writer, id, value string, props analysis.Properties) {
	fmt.Fprintf(w, "id:                %s\n", id)
	fmt.Fprintf(w, "value:             %q\n", value)
	fmt.Fprintf(w, "length:            %d\n", props.Length)
	fmt.Fprintf(w, "is_palindrome:     %t\n", props.IsPalindrome)
	fmt.Fprintf(w, "unique_characters: %d\n", props.UniqueCharacters)
	fmt.Fprintf(w, "word_count:        %d\n", props.WordCount)
}
