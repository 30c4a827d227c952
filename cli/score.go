package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newScoreCmd(load engineLoader) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "score <url>",
		Short: "Score a URL for phishing risk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := load()
			if err != nil {
				return err
			}

			verdict := e.scorer.Score(args[0])
			if jsonOutput {
				return renderJSON(cmd, verdict)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderURLVerdict(verdict))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
