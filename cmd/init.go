package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ravikantcool2024/sindri/pkg/initialize"
)

const (
	templateSourceFlag = "template-source"
	defaultsFlag       = "defaults"
)

var (
	initCmd = &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a new circuit project",
		Long: `Init scaffolds a new circuit project in the target directory, asking a
short series of questions to configure it. The directory defaults to the
current one and is created if it does not exist.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			targetDir := "."
			if len(args) == 1 {
				targetDir = args[0]
			}

			i := initialize.NewInitializer()
			source, err := cmd.Flags().GetString(templateSourceFlag)
			if err == nil && source != "" {
				initialize.WithTemplateSource(source)(&i)
			}
			defaults, err := cmd.Flags().GetString(defaultsFlag)
			if err == nil && defaults != "" {
				presets, err := initialize.ReadPresets(defaults)
				if err != nil {
					return err
				}
				initialize.WithPresets(presets)(&i)
			}

			return i.Run(targetDir)
		},
	}
)

func init() {
	initCmd.Flags().String(templateSourceFlag, "", "scaffold from a local directory or git URL instead of the built-in templates")
	initCmd.Flags().String(defaultsFlag, "", "read preset answers from a TOML file")
}
