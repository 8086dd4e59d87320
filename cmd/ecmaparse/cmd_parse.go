package main

import (
	"fmt"
	"os"

	"github.com/dewolfson/ecmaparse/js"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newParseCmd() *cobra.Command {
	var module bool
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a file and dump its statement list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args[0], module)
		},
	}
	cmd.Flags().BoolVar(&module, "module", false, "parse as an ES module")
	return cmd
}

func runParse(path string, module bool) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	vm := js.NewVM(newLogger())
	mode := js.ProgramMode
	if module {
		mode = js.ModuleAnalyzeMode
	}

	result, err := js.Parse(vm, src, js.Options{Mode: mode})
	if err != nil {
		printDiagnostic(path, err)
		os.Exit(1)
	}

	for _, stmt := range result.Program.Body {
		fmt.Println(stmt.String())
	}
	return nil
}

func printDiagnostic(path string, err error) {
	colored := term.IsTerminal(int(os.Stderr.Fd()))
	prefix := fmt.Sprintf("%s: ", path)
	if pe, ok := js.AsParseError(err); ok {
		line, col, context := pe.Position()
		if colored {
			fmt.Fprintf(os.Stderr, "\x1b[31merror\x1b[0m: %s\n", pe.Error())
			_ = line
			_ = col
		} else {
			fmt.Fprintf(os.Stderr, "%serror: %s\n", prefix, pe.Error())
		}
		if context != "" {
			fmt.Fprintln(os.Stderr, context)
		}
		return
	}
	fmt.Fprintf(os.Stderr, "%serror: %s\n", prefix, err)
}
