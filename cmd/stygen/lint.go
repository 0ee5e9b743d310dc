package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/stygen"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint icon usage in TeX sources",
	Long: `Check that icon references in TeX sources use the generated \faName commands.
Detects undefined commands, hardcoded code points, and raw faicon@ lookups.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		styFile := getStringWithFallback("sty", "generate.outfile", stygen.DefaultOutfile)
		return runLint(styFile)
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("paths", []string{"**/*.tex"}, "File patterns to scan for icon references")
	f.String("sty", stygen.DefaultOutfile, "Generated style file to lint against")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.Float64("threshold", 0.0, "Minimum adoption percentage for strict mode")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (stylint) suffix on issues")
}

// runLint is shared between `stygen lint` and `stygen generate --lint`.
func runLint(styFile string) error {
	lintConfig := buildLintConfig(styFile)

	lintResult, err := stygen.Lint(lintConfig)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := stygen.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		stygen.WriteOutput(os.Stdout, lintResult, format, lintConfig)
	}

	// Exit code logic - "Soft Gate" approach
	strict := getBoolWithFallback("strict", "lint.strict", false)
	if strict {
		// Strict mode: any issue (error or warning) fails the build
		if len(lintResult.Issues) > 0 {
			os.Exit(1)
		}

		// Also check threshold if specified
		threshold := getFloat64WithFallback("threshold", "lint.threshold", 0.0)
		if threshold > 0 && lintResult.UsagePercentage < threshold {
			if !quiet {
				fmt.Fprintf(os.Stderr, "\nStrict mode: Usage percentage %.1f%% is below threshold %.1f%%\n",
					lintResult.UsagePercentage, threshold)
			}
			os.Exit(1)
		}
	} else if lintResult.ErrorCount > 0 {
		// Default "Soft Gate" mode: only errors fail the build
		os.Exit(1)
	}

	return nil
}
