package cli

import (
	"github.com/spf13/cobra"
	"github.com/unkn0wn-root/romanum"
)

func decodeCmd() *cobra.Command {
	var asJSON bool

	c := &cobra.Command{
		Use:   "decode NUMERAL",
		Short: "Convert an uppercase Roman numeral to an integer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := romanum.Decode(args[0])
			if err != nil {
				return err
			}
			return printConversion(cmd.OutOrStdout(), args[0], n, asJSON)
		},
	}
	c.Flags().BoolVar(&asJSON, "json", false, "print the conversion as JSON")
	return c
}
