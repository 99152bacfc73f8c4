// Command lambda is the CLI entry point (§6, §2's ambient stack #9):
// `lambda repl` starts an interactive session, `lambda run <file>`
// evaluates a script non-interactively. Generalized from
// akashmaji946-go-mix/main/main.go's flat os.Args switch
// (--help/--version/server/<file>/default-REPL) into a spf13/cobra
// command tree, the pattern opal-lang-opal's cli/main.go and
// conneroisu-gix's own cmd/ package both use for their CLIs.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lambda-lang/lambda/internal/config"
	"github.com/lambda-lang/lambda/internal/script"
	"github.com/lambda-lang/lambda/internal/shell"
)

const (
	version = "v0.1.0"
	author  = "lambda contributors"
	license = "MIT"
	prompt  = "lambda>>> "
	line    = "----------------------------------------------------------------"
	banner  = `
   __                  __
  / /__ ___ _  ___  ___/ /__ _
 / / _ ` + "`" + `/  ' \/ _ \/ _  / _ ` + "`" + `/
/_/\_,_/_/_/_/\_,_/\_,_/\_,_/
`
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "lambda",
		Short: "lambda is a small functional language with dimensioned numbers",
	}
	root.PersistentFlags().StringVar(&configPath, "config", ".lambdarc.yaml", "operator precedence overrides file")

	root.AddCommand(replCmd(), runCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			shell.New(banner, version, author, line, license, prompt).Run(opts, cwd)
			return nil
		},
	}
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Evaluate a script file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := config.Load(configPath)
			if err != nil {
				return err
			}
			path := args[0]
			v, lerr := script.Run(path, cmd.OutOrStdout(), opts)
			if lerr != nil {
				return fmt.Errorf("%s: %s", filepath.Base(path), lerr.Error())
			}
			if v != nil {
				fmt.Fprintln(cmd.OutOrStdout(), v.String())
			}
			return nil
		},
	}
}
