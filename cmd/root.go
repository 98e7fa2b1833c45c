package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const debugFlag = "debug"

var (
	rootCmd = &cobra.Command{
		Use:          "sindri",
		Short:        "A scaffolding tool for zero-knowledge circuit projects",
		Long:         `Sindri creates new zero-knowledge circuit projects from starter templates.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug, err := cmd.Flags().GetBool(debugFlag); err == nil && debug {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolP(debugFlag, "d", false, "enable debug logging")
	rootCmd.AddCommand(initCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
