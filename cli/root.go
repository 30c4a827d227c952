package cli

import "github.com/spf13/cobra"

var version = "dev"

func newRootCmd(load engineLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "safelink",
		Short:         "Score URLs for phishing risk and verify companies",
		Long:          "safelink scores a URL for phishing and fraud risk and checks whether a company name or website belongs to a real company.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newScoreCmd(load))
	cmd.AddCommand(newVerifyCmd(load))
	cmd.AddCommand(newServeCmd(load))
	return cmd
}

func Execute() error {
	return newRootCmd(loadEngine).Execute()
}
