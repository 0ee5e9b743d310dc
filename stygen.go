// Package stygen generates the fontawesome5 XeLaTeX package from Font Awesome
// icon metadata and lints TeX sources against the generated package.
//
// stygen turns the icons.yml metadata file (icon name, unicode code point,
// style membership) into a .sty file exposing one \fa<Name> command per icon
// per style, with solid/regular fallback when an icon is missing from the
// requested style.
//
// # Generation
//
// Generate fontawesome5.sty from a local metadata file:
//
//	config := stygen.Config{
//		Infile:  "metadata/icons.yml",
//		Outfile: "fontawesome5.sty",
//	}
//	result, err := stygen.Generate(context.Background(), config)
//
// Leave Infile empty to download the metadata from the Font Awesome
// repository instead.
//
// # Linting
//
// Lint icon command usage in TeX sources:
//
//	lintConfig := stygen.LintConfig{
//		StyFile:   "fontawesome5.sty",
//		ScanPaths: []string{"**/*.tex"},
//	}
//	result, err := stygen.Lint(lintConfig)
//
// The linter flags \fa commands that the generated package does not define,
// hardcoded \symbol{"XXXX"} usages that have a named command, and raw
// faicon@name lookups.
//
// # CLI Tool
//
// stygen also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/stygen/cmd/stygen@latest
package stygen
