package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"cssc"
	"cssc/internal/compat"
)

var (
	minifyTargets   []string
	minifyCompress  bool
	minifyRTL       bool
	minifySourceMap bool
)

func newMinifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minify [file]",
		Short: "Parse, transform, and print a stylesheet for the given browser targets.",
		Args:  cobra.ExactArgs(1),
		RunE:  runMinify,
	}
	cmd.Flags().StringSliceVar(&minifyTargets, "target", nil, "browser targets, e.g. chrome90,firefox85,safari14")
	cmd.Flags().BoolVar(&minifyCompress, "minify", true, "minify the printed output")
	cmd.Flags().BoolVar(&minifyRTL, "rtl-fallback", false, "emit [dir=rtl] overrides for logical properties")
	cmd.Flags().BoolVar(&minifySourceMap, "sourcemap", false, "emit a source map alongside the output")
	return cmd
}

func runMinify(_ *cobra.Command, args []string) error {
	filename := args[0]
	source, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filename, err)
	}

	constraints, err := parseTargets(minifyTargets)
	if err != nil {
		return err
	}

	sheet, log := cssc.Parse(cssc.ParserOptions{Filename: filename}, string(source))
	for _, d := range log.Diagnostics() {
		fmt.Fprintf(os.Stderr, "%s: %s:%d:%d: %s\n", d.Kind, d.Filename, d.Range.Start.Line+1, d.Range.Start.Column+1, d.Text)
	}

	transformed := cssc.Minify(sheet, cssc.MinifyOptions{Minify: minifyCompress, Constraints: constraints, RTLFallback: minifyRTL})
	result := cssc.Print(transformed, cssc.PrinterOptions{Minify: minifyCompress, SourceMap: minifySourceMap, SourceText: string(source), Targets: constraints})

	fmt.Println(result.Code)
	if result.SourceMap != nil {
		mapFile := filename + ".map"
		if err := os.WriteFile(mapFile, result.SourceMap, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", mapFile, err)
		}
	}
	return nil
}

// parseTargets parses a "chrome90,firefox85" style flag into the compat
// constraint map Minify expects, keyed by engine name.
func parseTargets(targets []string) (map[compat.Engine][]int, error) {
	if len(targets) == 0 {
		return nil, nil
	}
	names := map[string]compat.Engine{
		"chrome": compat.Chrome, "edge": compat.Edge, "firefox": compat.Firefox,
		"ie": compat.IE, "ios": compat.IOS, "opera": compat.Opera, "safari": compat.Safari,
	}
	out := map[compat.Engine][]int{}
	for _, target := range targets {
		target = strings.TrimSpace(target)
		var name strings.Builder
		var version strings.Builder
		for _, r := range target {
			if r >= '0' && r <= '9' || r == '.' {
				version.WriteRune(r)
			} else {
				name.WriteRune(r)
			}
		}
		engine, ok := names[strings.ToLower(name.String())]
		if !ok {
			return nil, fmt.Errorf("unrecognized target engine %q", target)
		}
		var parts []int
		for _, field := range strings.Split(version.String(), ".") {
			if field == "" {
				continue
			}
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("invalid version in target %q: %w", target, err)
			}
			parts = append(parts, n)
		}
		out[engine] = parts
	}
	return out, nil
}
