package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/unkn0wn-root/romanum"
)

func encodeCmd() *cobra.Command {
	var asJSON bool

	c := &cobra.Command{
		Use:   "encode N",
		Short: "Convert an integer (1-4999) to a Roman numeral",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("not an integer: %q", args[0])
			}
			s, err := romanum.Encode(n)
			if err != nil {
				return err
			}
			return printConversion(cmd.OutOrStdout(), args[0], s, asJSON)
		},
	}
	c.Flags().BoolVar(&asJSON, "json", false, "print the conversion as JSON")
	return c
}
