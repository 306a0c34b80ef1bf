// gen-docs is a standalone binary for generating tsinit CLI documentation
// in Markdown, man page, YAML and reStructuredText formats.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"github.com/spf13/pflag"

	"github.com/schmitthub/tsinit/internal/cmd/root"
	"github.com/schmitthub/tsinit/internal/cmdutil"
	"github.com/schmitthub/tsinit/internal/iostreams"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("gen-docs", pflag.ContinueOnError)

	var (
		flagDocPath  string
		flagMarkdown bool
		flagManPage  bool
		flagYAML     bool
		flagRST      bool
		flagWebsite  bool
	)

	flags.StringVar(&flagDocPath, "doc-path", "", "Output directory for generated docs (required)")
	flags.BoolVar(&flagMarkdown, "markdown", false, "Generate Markdown documentation")
	flags.BoolVar(&flagManPage, "man-page", false, "Generate man pages")
	flags.BoolVar(&flagYAML, "yaml", false, "Generate YAML reference")
	flags.BoolVar(&flagRST, "rst", false, "Generate reStructuredText documentation")
	flags.BoolVar(&flagWebsite, "website", false, "Add Jekyll front matter (requires --markdown)")

	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n\n%s", filepath.Base(args[0]), flags.FlagUsages())
	}

	if err := flags.Parse(args[1:]); err != nil {
		return err
	}

	// Validation
	if flagDocPath == "" {
		return fmt.Errorf("--doc-path is required")
	}

	if !flagMarkdown && !flagManPage && !flagYAML && !flagRST {
		return fmt.Errorf("at least one format must be specified (--markdown, --man-page, --yaml, --rst)")
	}

	if flagWebsite && !flagMarkdown {
		return fmt.Errorf("--website requires --markdown")
	}

	rootCmd := newRootCmd()

	type generator struct {
		enabled bool
		dir     string
		label   string
		gen     func(dir string) error
	}

	generators := []generator{
		{flagMarkdown, "markdown", "Markdown documentation", func(dir string) error {
			if flagWebsite {
				return doc.GenMarkdownTreeCustom(rootCmd, dir, jekyllFilePrepender, jekyllLinkHandler)
			}
			return doc.GenMarkdownTree(rootCmd, dir)
		}},
		{flagManPage, "man", "man pages", func(dir string) error {
			header := &doc.GenManHeader{
				Title:   "TSINIT",
				Section: "1",
				Source:  "tsinit",
				Manual:  "tsinit Manual",
			}
			return doc.GenManTree(rootCmd, header, dir)
		}},
		{flagYAML, "yaml", "YAML documentation", func(dir string) error {
			return doc.GenYamlTree(rootCmd, dir)
		}},
		{flagRST, "rst", "reStructuredText documentation", func(dir string) error {
			return doc.GenReSTTree(rootCmd, dir)
		}},
	}

	for _, g := range generators {
		if !g.enabled {
			continue
		}
		dir := filepath.Join(flagDocPath, g.dir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s directory: %w", g.dir, err)
		}
		if err := g.gen(dir); err != nil {
			return fmt.Errorf("failed to generate %s: %w", g.label, err)
		}
		fmt.Fprintf(os.Stderr, "Generated %s in %s\n", g.label, dir)
	}

	return nil
}

// newRootCmd builds the command tree without touching the real environment.
func newRootCmd() *cobra.Command {
	f := &cmdutil.Factory{IOStreams: iostreams.NewIOStreams()}

	rootCmd := root.NewCmdRoot(f, "", "")
	rootCmd.DisableAutoGenTag = true
	return rootCmd
}

// jekyllFilePrepender returns Jekyll front matter for a given filename.
func jekyllFilePrepender(filename string) string {
	// "tsinit_config_set.md" -> "tsinit config set"
	base := filepath.Base(filename)
	name := strings.TrimSuffix(base, ".md")
	cmdPath := strings.ReplaceAll(name, "_", " ")

	permalink := "/cli/" + strings.ReplaceAll(name, "_", "/") + "/"

	return fmt.Sprintf(`---
layout: manual
permalink: %s
title: %s
---

`, permalink, cmdPath)
}

// jekyllLinkHandler turns "tsinit_config.md" into the page's permalink.
func jekyllLinkHandler(name string) string {
	return "/cli/" + strings.ReplaceAll(strings.TrimSuffix(name, ".md"), "_", "/") + "/"
}
