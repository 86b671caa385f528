// Command jsonpp reads a JSON document from a file or standard input,
// parses it into a value tree and pretty-prints it to standard output,
// followed by a blank line. It exits non-zero when parsing fails.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/inumerics/islandjson"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var ascii bool
	cmd := &cobra.Command{
		Use:          "jsonpp [file]",
		Short:        "Parse a JSON document and pretty-print it",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := io.Reader(cmd.InOrStdin())
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("unable to open file: %w", err)
				}
				defer f.Close()
				in = f
			}
			v, err := islandjson.NewJSONReader(in)
			if err != nil {
				return fmt.Errorf("parsing failed (%s): %w",
					islandjson.StatusOf(err), err)
			}
			out := cmd.OutOrStdout()
			if ascii {
				_, err = v.PrintASCII(out)
			} else {
				_, err = v.Print(out)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out)
			return err
		},
	}
	cmd.Flags().BoolVar(&ascii, "ascii", false,
		"escape non-ASCII characters in string values")
	return cmd
}
