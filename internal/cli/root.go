package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "romanum",
		Short:        "Convert between integers and Roman numerals",
		SilenceUsage: true,
	}
	cmd.AddCommand(encodeCmd(), decodeCmd())
	return cmd
}

type conversion struct {
	Input  string `json:"input"`
	Output any    `json:"output"`
}

func printConversion(w io.Writer, in string, out any, asJSON bool) error {
	if !asJSON {
		_, err := fmt.Fprintln(w, out)
		return err
	}
	return json.NewEncoder(w).Encode(conversion{Input: in, Output: out})
}
