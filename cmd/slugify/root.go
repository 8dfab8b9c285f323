package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/slugify/pkg/slug"
)

type slugFlags struct {
	replacement string
	remove      string
	lower       bool
	strict      bool
	trim        bool
	stripHTML   bool
}

func newRootCommand(ctx *commandContext) *cobra.Command {
	var flags slugFlags

	rootCmd := &cobra.Command{
		Use:           "slugify [text...]",
		Short:         "Convert text into URL-safe slugs",
		Long:          "Convert text into slugs. Arguments are joined with spaces; without arguments every line of stdin is converted.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(cmd, ctx, flags)
			if err != nil {
				return ctx.fail("invalid options", err)
			}
			if len(args) > 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), ctx.registry.MakeWith(strings.Join(args, " "), opts))
				return err
			}
			in := cmd.InOrStdin()
			if isTerminal(in) {
				return cmd.Help()
			}
			return slugifyLines(cmd, ctx, in, opts)
		},
	}

	rootCmd.PersistentFlags().StringArrayVar(&ctx.charmapFlags, "charmap", nil, "Charmap file (yaml, toml, json) to merge; repeatable")
	rootCmd.PersistentFlags().StringVarP(&ctx.localeFlag, "locale", "l", "", "Locale overlay to apply (e.g. de, fr, uk)")

	rootCmd.Flags().StringVarP(&flags.replacement, "replacement", "r", slug.DefaultReplacement, "Separator token")
	rootCmd.Flags().StringVar(&flags.remove, "remove", "", "Regular expression; matches are deleted before substitution")
	rootCmd.Flags().BoolVar(&flags.lower, "lower", false, "Lowercase the result")
	rootCmd.Flags().BoolVar(&flags.strict, "strict", false, "Keep only ASCII letters, digits and the separator")
	rootCmd.Flags().BoolVar(&flags.trim, "trim", true, "Strip leading and trailing separators")
	rootCmd.Flags().BoolVar(&flags.stripHTML, "strip-html", false, "Remove HTML markup and decode entities first")

	rootCmd.AddCommand(newLocalesCommand(ctx))
	rootCmd.AddCommand(newLookupCommand(ctx))

	return rootCmd
}

// resolveOptions layers explicitly set flags over the configured defaults.
func resolveOptions(cmd *cobra.Command, ctx *commandContext, flags slugFlags) (slug.Options, error) {
	cfg := ctx.cfg
	o := slug.Options{
		Replacement: cfg.Replacement,
		Locale:      ctx.locale(cmd),
		Lower:       cfg.Lower,
		Strict:      cfg.Strict,
		Trim:        cfg.Trim,
		StripHTML:   cfg.StripHTML,
	}

	set := cmd.Flags().Changed
	if set("replacement") {
		o.Replacement = flags.replacement
	}
	if set("lower") {
		o.Lower = flags.lower
	}
	if set("strict") {
		o.Strict = flags.strict
	}
	if set("trim") {
		o.Trim = flags.trim
	}
	if set("strip-html") {
		o.StripHTML = flags.stripHTML
	}
	if flags.remove != "" {
		re, err := regexp.Compile(flags.remove)
		if err != nil {
			return slug.Options{}, fmt.Errorf("--remove: %w", err)
		}
		o.Remove = slug.Pattern(re)
	}
	return o, nil
}

func slugifyLines(cmd *cobra.Command, ctx *commandContext, in io.Reader, opts slug.Options) error {
	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lines := 0
	for scanner.Scan() {
		if _, err := fmt.Fprintln(out, ctx.registry.MakeWith(scanner.Text(), opts)); err != nil {
			return err
		}
		lines++
	}
	if err := scanner.Err(); err != nil {
		return ctx.fail("failed to read input", err, slog.Int("line", lines+1))
	}
	ctx.log.DebugContext(ctx.ctx, "input converted", slog.Int("lines", lines), slog.String("locale", opts.Locale))
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
