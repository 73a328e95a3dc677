// cssc is a thin cobra CLI over this module's public API, demonstrating
// parse/minify/bundle the way jinterlante1206-AleutianLocal's cmd/aleutian
// wraps its services in one cobra.Command tree per verb.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "cssc",
		Short: "A CSS tokenizer, parser, minifier, and @import bundler.",
	}
	root.AddCommand(newParseCommand(), newMinifyCommand(), newBundleCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
