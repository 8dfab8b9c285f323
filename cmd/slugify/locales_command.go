package main

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/spf13/cobra"
)

var errUnknownLocale = errors.New("unknown locale")

func newLocalesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "locales [code]",
		Short: "List locale overlays or show the mappings of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				for _, code := range ctx.registry.Locales() {
					if _, err := fmt.Fprintln(out, code); err != nil {
						return err
					}
				}
				return nil
			}

			code := args[0]
			mapping := ctx.registry.LocaleTable(code)
			if mapping == nil {
				return ctx.fail("cannot show locale", fmt.Errorf("%w: %q", errUnknownLocale, code))
			}

			rows := make([][]string, 0, len(mapping))
			for _, key := range slices.Sorted(maps.Keys(mapping)) {
				rows = append(rows, []string{key, strconv.Quote(mapping[key])})
			}
			_, err := fmt.Fprintln(out, renderTable([]string{"Character", "Replacement"}, rows))
			return err
		},
	}
}
