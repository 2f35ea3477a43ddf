/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Command unitype prints the metadata of TrueType and OpenType font files.
package main

import (
	"fmt"
	"os"

	"github.com/tdewolff/argp"

	"github.com/unidoc/unitype"
	"github.com/unidoc/unitype/common"
	"github.com/unidoc/unitype/internal/report"
)

type Dump struct {
	Format     string `short:"f" default:"text" desc:"Output format: text or yaml"`
	Concurrent bool   `desc:"Decode tables concurrently"`
	Checksums  bool   `desc:"Verify table checksums"`
	Verbose    bool   `short:"v" desc:"Log decoding details"`
	Input      string `index:"0" desc:"Font file"`
}

type Validate struct {
	Verbose bool   `short:"v" desc:"Log decoding details"`
	Input   string `index:"0" desc:"Font file"`
}

func main() {
	root := argp.NewCmd(&Dump{}, "Font metadata decoder for TrueType and OpenType files")
	root.AddCmd(&Validate{}, "validate", "Verify table bounds and checksums")
	root.Parse()
	root.PrintHelp()
}

func setupLogging(verbose bool) {
	if verbose {
		common.SetLogger(common.NewConsoleLogger(common.LogLevelDebug))
	}
}

func (cmd *Dump) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	setupLogging(cmd.Verbose)

	data, err := os.ReadFile(cmd.Input)
	if err != nil {
		return err
	}

	m, err := unitype.DecodeWithOptions(data, unitype.DecodeOptions{
		Concurrent:      cmd.Concurrent,
		VerifyChecksums: cmd.Checksums,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Input, err)
	}
	return report.Write(os.Stdout, m, cmd.Format)
}

func (cmd *Validate) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	setupLogging(cmd.Verbose)

	data, err := os.ReadFile(cmd.Input)
	if err != nil {
		return err
	}
	if err := unitype.Validate(data); err != nil {
		return fmt.Errorf("%s: %w", cmd.Input, err)
	}
	fmt.Printf("%s: OK\n", cmd.Input)
	return nil
}
