package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"cssc"
	"cssc/internal/fileprovider"
)

var bundleAllowNesting bool

func newBundleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bundle [entry file]",
		Short: "Resolve and inline every @import reachable from entry file.",
		Args:  cobra.ExactArgs(1),
		RunE:  runBundle,
	}
	cmd.Flags().BoolVar(&bundleAllowNesting, "nesting", false, "allow CSS Nesting syntax inside style rules")
	return cmd
}

func runBundle(cmd *cobra.Command, args []string) error {
	entry := args[0]
	provider := fileprovider.NewDisk()

	sheet, log, err := cssc.Bundle(context.Background(), provider, entry, cssc.BundleOptions{AllowNesting: bundleAllowNesting})
	if err != nil {
		return fmt.Errorf("bundling %s: %w", entry, err)
	}
	for _, d := range log.Diagnostics() {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s:%d:%d: %s\n", d.Kind, d.Filename, d.Range.Start.Line+1, d.Range.Start.Column+1, d.Text)
	}

	result := cssc.Print(sheet, cssc.PrinterOptions{})
	fmt.Fprintln(cmd.OutOrStdout(), result.Code)
	return nil
}
