package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mediademo",
		Short:         "Media version routing demo",
		Long:          "mediademo serves a demo shop in mobile, tablet and full versions chosen per device and per visitor.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringSlice("env-file", []string{".env"}, "dotenv files loaded before parsing the environment")
	root.PersistentFlags().String("prefix", "", "prefix of every environment variable, e.g. DEMO_")

	root.AddCommand(newServeCmd(), newRoutesCmd())
	return root
}
