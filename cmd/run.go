// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/hashicorp/go-extension"
	"github.com/pkg/errors"
)

// CLI are the cli parameters for the go-extension binary
type CLI struct {
	Format  string           `short:"f" optional:"" help:"Format string to parse (e.g. \"tar.gz\") instead of file names."`
	Names   []string         `arg:"" name:"name" optional:"" help:"File names to inspect."`
	Verbose bool             `short:"v" optional:"" help:"Verbose logging."`
	Version kong.VersionFlag `short:"V" optional:"" help:"Print release version information."`
}

// Run is the entrypoint into go-extension as a cli tool
func Run(version, commit, date string) {
	var cli CLI
	kong.Parse(&cli,
		kong.Description("Recognize compression and archive extensions in file names"),
		kong.UsageOnError(),
		kong.Vars{
			"version": fmt.Sprintf("%s (%s), commit %s, built at %s", filepath.Base(os.Args[0]), version, commit, date),
		},
	)

	// Check for verbose output
	logLevel := slog.LevelError
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}

	// setup logger
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	if cli.Format == "" && len(cli.Names) == 0 {
		logger.Error("nothing to do, provide a format string or file names")
		os.Exit(-1)
	}

	// parse the format string
	if cli.Format != "" {
		exts, err := extension.ParseFormat(cli.Format)
		if err != nil {
			logger.Error("parsing format failed", "err", errors.Wrapf(err, "format %q", cli.Format))
			os.Exit(-1)
		}
		logger.Debug("parsed format", "format", cli.Format, "extensions", len(exts))
		fmt.Printf("%s: %s\n", cli.Format, renderPipeline(exts))
	}

	// inspect file names
	for _, name := range cli.Names {
		rest, exts := extension.SplitExtensions(name)
		logger.Debug("inspected name", "name", name, "rest", rest, "extensions", len(exts))
		if len(exts) == 0 {
			fmt.Printf("%s: no known extension\n", name)
			continue
		}
		fmt.Printf("%s: base %q, formats %s\n", name, rest, renderPipeline(exts))
	}
}

// renderPipeline flattens the formats of all extensions into one dotted string
func renderPipeline(exts []extension.Extension) string {
	var sb strings.Builder
	for _, ext := range exts {
		for _, format := range ext.Formats() {
			sb.WriteString(format.String())
		}
	}
	return sb.String()
}
