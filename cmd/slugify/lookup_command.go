package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newLookupCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <key>",
		Short: "Show how a character or key resolves",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			v, ok := ctx.registry.Lookup(key, ctx.locale(cmd))
			switch {
			case !ok:
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s passes through unchanged\n", strconv.Quote(key))
				return err
			case v == "":
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s is deleted\n", strconv.Quote(key))
				return err
			default:
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", strconv.Quote(key), strconv.Quote(v))
				return err
			}
		},
	}
}
