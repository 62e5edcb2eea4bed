package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/spigell/resume-insight/internal/l10n"
)

var sampleInstant = time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)

var localesCmd = &cobra.Command{
	Use:   "locales",
	Short: "List supported locales with sample renderings",
	RunE: func(cmd *cobra.Command, _ []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		for _, loc := range l10n.SupportedLocales() {
			sample, err := localeSample(loc)
			if err != nil {
				return err
			}
			fmt.Fprintf(tw, "%s\t%s\n", loc, sample)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(localesCmd)
}

func localeSample(loc l10n.Locale) (string, error) {
	date, err := l10n.DateTime(sampleInstant, loc)
	if err != nil {
		return "", err
	}
	number, err := l10n.Number(1234567.891, loc, nil)
	if err != nil {
		return "", err
	}
	money, err := l10n.Currency(1234.5, loc, "RUB", nil)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s\t%s\t%s", date, number, money), nil
}
