package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cssc"
)

func newParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a stylesheet and print it back unmodified.",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	return cmd
}

func runParse(_ *cobra.Command, args []string) error {
	filename := args[0]
	source, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filename, err)
	}

	sheet, log := cssc.Parse(cssc.ParserOptions{Filename: filename}, string(source))
	for _, d := range log.Diagnostics() {
		fmt.Fprintf(os.Stderr, "%s: %s:%d:%d: %s\n", d.Kind, d.Filename, d.Range.Start.Line+1, d.Range.Start.Column+1, d.Text)
	}

	result := cssc.Print(sheet, cssc.PrinterOptions{})
	fmt.Println(result.Code)
	return nil
}
