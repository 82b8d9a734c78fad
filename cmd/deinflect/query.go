package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query <word>",
	Short: "Print every candidate dictionary form of a word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine()
		if err != nil {
			return err
		}
		for _, c := range engine.Transform(args[0]) {
			trail := "(original form)"
			if len(c.Trail) > 0 {
				trail = strings.Join(c.Trail, " << ")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-24s %08x  %s\n", c.Text, uint32(c.Conditions), trail)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
}
