// Command ecmaparse parses ECMAScript source files and reports either
// a syntax verdict or a dumped AST (spec.md §6 External Interfaces).
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ecmaparse",
		Short: "An ECMAScript parser and syntax checker",
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newCheckCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *zap.Logger {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
