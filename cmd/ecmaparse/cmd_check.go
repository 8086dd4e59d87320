package main

import (
	"fmt"
	"os"

	"github.com/dewolfson/ecmaparse/js"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var module bool
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Report only whether a file is syntactically valid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args[0], module)
		},
	}
	cmd.Flags().BoolVar(&module, "module", false, "parse as an ES module")
	return cmd
}

func runCheck(path string, module bool) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	vm := js.NewVM(newLogger())
	mode := js.ProgramMode
	if module {
		mode = js.ModuleAnalyzeMode
	}

	_, err = js.Parse(vm, src, js.Options{Mode: mode, Builder: js.NewSyntaxOnlyBuilder()})
	if err != nil {
		printDiagnostic(path, err)
		os.Exit(1)
	}
	fmt.Println("ok")
	return nil
}
