package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/stygen"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate the XeLaTeX style file from icon metadata",
	Long: `Download FontAwesome's icons.yml metadata (or read a local copy) and
generate a XeLaTeX style file defining one \faName command per icon.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringP("infile", "i", "", "Input icons.yml file (default: download from FontAwesome's repo)")
	f.StringP("outfile", "o", stygen.DefaultOutfile, "Output LaTeX style file")
	f.String("url", stygen.MetadataURL, "Metadata download URL")
	f.BoolP("clobber", "C", false, "Overwrite existing output file")
	f.Duration("timeout", stygen.DefaultTimeout, "Metadata download timeout")
	f.Bool("lint", false, "Run linter after generation")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	config := buildGenerateConfig()

	result, err := stygen.Generate(context.Background(), config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)

	if !quiet {
		fmt.Printf("Generated %s\n", result.Outfile)
		fmt.Printf("  Icons mapped: %d\n", result.Icons)
		fmt.Printf("  Commands: %d solid, %d regular, %d brands\n",
			result.Solid, result.Regular, result.Brands)
	}

	// Run lint after generate if --lint flag set
	lint, _ := cmd.Flags().GetBool("lint")
	if lint {
		return runLint(result.Outfile)
	}

	return nil
}
