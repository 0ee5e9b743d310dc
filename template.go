package stygen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// Provenance identifies the producing program in the generated header.
type Provenance struct {
	Program string // program name recorded in the header comment
	Date    string // generation date, YYYY/MM/DD
	Package string // LaTeX package name used in \ProvidesPackage
}

// styTemplate is the package body. The statement lists are injected
// pre-joined; everything else is fixed scaffolding around them. Template
// actions use << >> delimiters so the TeX braces stay literal.
const styTemplate = `%%
%% Font Awesome v5 mapping for XeLaTeX
%%
%% Generated by: <<.Program>>
%% Date: <<.Date>>
%%
%% Usage
%% -----
%% 1. \usepackage{<<.Package>>}  %% Prefer *Solid* style by default
%%    or
%%    \usepackage[regular]{<<.Package>>}  %% Prefer *Regular* style
%%
%%    NOTE:
%%    The *Solid* style has many more icons than the *Regular* style.
%%    If one style doesn't have an icon, it falls back to the other style.
%%
%% 2. use an icon by its command, e.g., \faGithub
%%    or by its name, e.g., \faicon{github}
%%

\NeedsTeXFormat{LaTeX2e}[1994/06/01]
\ProvidesPackage{<<.Package>>}[<<.Date>> Font Awesome 5]

\DeclareOption{regular}{\def\FA@regular{true}}
\ProcessOptions\relax

\RequirePackage{fontspec}
\RequirePackage{etoolbox}

%% Declare all variants
%% Solid (default)
\newfontfamily\FontAwesomeSolid[
  BoldFont={Font Awesome 5 Free Solid},
]{Font Awesome 5 Free Solid}
%% Regular
\newfontfamily\FontAwesomeRegular[
  BoldFont={Font Awesome 5 Free},
]{Font Awesome 5 Free}
%% Brands
\newfontfamily\FontAwesomeBrands[
  BoldFont={Font Awesome 5 Brands},
]{Font Awesome 5 Brands}

%% Preferred font for the generic \faicon command
\ifundef{\FA@regular}{%
  \def\FA@font{\FontAwesomeSolid}%
}{%
  \def\FA@font{\FontAwesomeRegular}%
}

%% Generic command displaying an icon by its name
\newcommand*{\faicon}[1]{%
  {\FA@font\csname faicon@#1\endcsname}%
}

%% Mappings
<<.Mappings>>

%% TeX commands
\ifundef{\FA@regular}{
%% [Solid] fallback to Regular style
<<.CmdsSolid>>
}{
%% [Regular] fallback to Solid style
<<.CmdsRegular>>
}
%% [Brands]
<<.CmdsBrands>>

\endinput
%% EOF
`

var styTmpl = template.Must(template.New("sty").Delims("<<", ">>").Parse(styTemplate))

// RenderPackage renders the complete .sty body around the generated
// statement lists. An empty Provenance.Package falls back to
// DefaultPackageName.
func RenderPackage(artifacts *Artifacts, prov Provenance) ([]byte, error) {
	if prov.Package == "" {
		prov.Package = DefaultPackageName
	}

	data := struct {
		Provenance
		Mappings    string
		CmdsSolid   string
		CmdsRegular string
		CmdsBrands  string
	}{
		Provenance:  prov,
		Mappings:    strings.Join(artifacts.Mappings, "\n"),
		CmdsSolid:   strings.Join(artifacts.Solid, "\n"),
		CmdsRegular: strings.Join(artifacts.Regular, "\n"),
		CmdsBrands:  strings.Join(artifacts.Brands, "\n"),
	}

	var buf bytes.Buffer
	if err := styTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering package body: %w", err)
	}
	return buf.Bytes(), nil
}
