package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newVerifyCmd(load engineLoader) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "verify <company name or url>",
		Short: "Check whether a company name or website belongs to a real company",
		Long:  "Verify runs every lookup concurrently and fuses the evidence. Unquoted multi-word names are joined with spaces.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := load()
			if err != nil {
				return err
			}

			verdict := e.verifier.Verify(cmd.Context(), strings.Join(args, " "))
			if jsonOutput {
				return renderJSON(cmd, verdict)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderCompanyVerdict(verdict))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
