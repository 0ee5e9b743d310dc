package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .stygen.yaml config file",
	Long:  `Create a .stygen.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".stygen.yaml"); err == nil && !force {
			return fmt.Errorf(".stygen.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".stygen.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .stygen.yaml")
		return nil
	},
}

const defaultConfig = `# stygen configuration
# Docs: https://github.com/yacobolo/stygen

# Shared settings
package: fontawesome5
verbose: false

# Generation settings
generate:
  # infile: icons.yml       # local metadata copy (skips download)
  url: https://github.com/FortAwesome/Font-Awesome/raw/master/metadata/icons.yml
  outfile: fontawesome5.sty
  clobber: false
  timeout: 60s

# Linting settings
lint:
  paths:
    - "**/*.tex"
  strict: false
  threshold: 0.0
  output-format: issues    # issues | summary | full | json
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
