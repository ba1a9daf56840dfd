// Command yapl parses a yapl source file and prints its syntax tree.
//
// Usage:
//
//	yapl SOURCE_FILE_PATH
//
// Exit status is 64 when the path is missing, 66 when the file cannot be
// read, 65 when it does not scan or parse, 0 otherwise.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ostnam/yapl/pkg/ast"
	"github.com/ostnam/yapl/pkg/compiler"
	"github.com/ostnam/yapl/pkg/tokens"
)

// sysexits(3) codes
const (
	exitUsage   = 64
	exitData    = 65
	exitNoInput = 66
)

var errUsage = errors.New("usage: yapl SOURCE_FILE_PATH")

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "yapl SOURCE_FILE_PATH",
		Short: "Parse a yapl source file and print its syntax tree",
		Long: "Parse a yapl source file and print its syntax tree.\n\n" +
			"Reserved words: " + strings.Join(tokens.Keywords(), ", "),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errUsage
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := compiler.Compile(args[0])
			if err != nil {
				return err
			}
			return ast.Fprint(cmd.OutOrStdout(), prog)
		},
	}
}

func exitCode(err error) int {
	var readErr *compiler.ReadError
	switch {
	case errors.Is(err, errUsage):
		return exitUsage
	case errors.As(err, &readErr):
		return exitNoInput
	}
	return exitData
}

var errPrefix = color.New(color.FgRed, color.Bold)

func printErr(w io.Writer, err error) {
	if errors.Is(err, errUsage) {
		fmt.Fprintln(w, err)
		return
	}
	errPrefix.Fprint(w, "error: ")
	fmt.Fprintln(w, err)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printErr(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
