package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/spigell/resume-insight/internal/l10n"
)

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Render dates, numbers and durations with the locale conventions",
}

// formatFlags holds the options of the format subcommands.
type formatFlags struct {
	month       string
	hour12      string
	seconds     bool
	minDecimals int
	maxDecimals int
	percentDecs int
	sizeDecs    int
	now         string
}

var fmtFlags formatFlags

type renderFunc func(loc l10n.Locale, args []string) (string, error)

func formatSubcommand(use, short string, args cobra.PositionalArgs, render renderFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := currentLocale()
			if err != nil {
				return err
			}

			out, err := render(loc, args)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(formatCmd)

	dateCmd := formatSubcommand("date VALUE", "Long date, e.g. January 15, 2024", cobra.ExactArgs(1), renderDate)
	dateCmd.Flags().StringVar(&fmtFlags.month, "month", "long", "month style: long, short or numeric")

	timeCmd := formatSubcommand("time VALUE", "Time of day", cobra.ExactArgs(1), renderTime)
	timeCmd.Flags().StringVar(&fmtFlags.hour12, "hour12", "", "force the 12-hour clock (true) or the 24-hour clock (false)")
	timeCmd.Flags().BoolVar(&fmtFlags.seconds, "seconds", false, "show seconds")

	numberCmd := formatSubcommand("number VALUE", "Grouped decimal number", cobra.ExactArgs(1), renderNumber)
	numberCmd.Flags().IntVar(&fmtFlags.minDecimals, "min-decimals", 0, "minimum fraction digits")
	numberCmd.Flags().IntVar(&fmtFlags.maxDecimals, "max-decimals", 3, "maximum fraction digits")

	percentCmd := formatSubcommand("percent RATIO", "Ratio as a percentage, 0.75 is 75%", cobra.ExactArgs(1), renderPercent)
	percentCmd.Flags().IntVar(&fmtFlags.percentDecs, "decimals", l10n.DefaultPercentDecimals, "fraction digits")

	fileSizeCmd := formatSubcommand("filesize BYTES", "Byte count in binary units", cobra.ExactArgs(1), renderFileSize)
	fileSizeCmd.Flags().IntVar(&fmtFlags.sizeDecs, "decimals", l10n.DefaultFileSizeDecimals, "fraction digits")

	sinceCmd := formatSubcommand("since VALUE", "Instant relative to now", cobra.ExactArgs(1), renderSince)
	sinceCmd.Flags().StringVar(&fmtFlags.now, "now", "", "reference instant (default is the current time)")

	formatCmd.AddCommand(
		dateCmd,
		formatSubcommand("date-short VALUE", "Short date, e.g. Jan 15, 2024", cobra.ExactArgs(1), renderDateShort),
		formatSubcommand("datetime VALUE", "Short date with time", cobra.ExactArgs(1), renderDateTime),
		timeCmd,
		numberCmd,
		percentCmd,
		formatSubcommand("currency AMOUNT CODE", "Money amount in an ISO 4217 currency", cobra.ExactArgs(2), renderCurrency),
		fileSizeCmd,
		formatSubcommand("relative AMOUNT UNIT", "Signed amount of a unit, e.g. -3 day", cobra.ExactArgs(2), renderRelative),
		sinceCmd,
		formatSubcommand("experience MONTHS", "Months of experience as years and months", cobra.ExactArgs(1), renderExperience),
	)
}

// instantArg treats integers as Unix milliseconds and anything else as an ISO string.
func instantArg(s string) any {
	s = strings.TrimSpace(s)
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ms
	}
	return s
}

func floatArg(s string) (float64, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", l10n.ErrInvalidNumber, s)
	}
	return x, nil
}

func monthStyle(s string) (l10n.MonthStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "long":
		return l10n.MonthLong, nil
	case "short":
		return l10n.MonthShort, nil
	case "numeric":
		return l10n.MonthNumeric, nil
	default:
		return 0, fmt.Errorf("unknown month style %q, expected long, short or numeric", s)
	}
}

func renderDate(loc l10n.Locale, args []string) (string, error) {
	style, err := monthStyle(fmtFlags.month)
	if err != nil {
		return "", err
	}
	return l10n.Date(instantArg(args[0]), loc, &l10n.DateOptions{Month: style})
}

func renderDateShort(loc l10n.Locale, args []string) (string, error) {
	return l10n.DateShort(instantArg(args[0]), loc)
}

func renderDateTime(loc l10n.Locale, args []string) (string, error) {
	return l10n.DateTime(instantArg(args[0]), loc)
}

func renderTime(loc l10n.Locale, args []string) (string, error) {
	opts := &l10n.TimeOptions{Seconds: fmtFlags.seconds}
	if fmtFlags.hour12 != "" {
		hour12, err := strconv.ParseBool(fmtFlags.hour12)
		if err != nil {
			return "", fmt.Errorf("parsing --hour12: %w", err)
		}
		opts.Hour12 = &hour12
	}
	return l10n.Time(instantArg(args[0]), loc, opts)
}

func renderNumber(loc l10n.Locale, args []string) (string, error) {
	x, err := floatArg(args[0])
	if err != nil {
		return "", err
	}
	return l10n.Number(x, loc, &l10n.NumberOptions{
		MinFractionDigits: fmtFlags.minDecimals,
		MaxFractionDigits: fmtFlags.maxDecimals,
	})
}

func renderPercent(loc l10n.Locale, args []string) (string, error) {
	x, err := floatArg(args[0])
	if err != nil {
		return "", err
	}
	return l10n.Percent(x, loc, fmtFlags.percentDecs)
}

func renderCurrency(loc l10n.Locale, args []string) (string, error) {
	x, err := floatArg(args[0])
	if err != nil {
		return "", err
	}
	return l10n.Currency(x, loc, args[1], nil)
}

func renderFileSize(loc l10n.Locale, args []string) (string, error) {
	x, err := floatArg(args[0])
	if err != nil {
		return "", err
	}
	return l10n.FileSize(x, loc, fmtFlags.sizeDecs)
}

func renderRelative(loc l10n.Locale, args []string) (string, error) {
	amount, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q", l10n.ErrInvalidNumber, args[0])
	}
	unit, err := l10n.ParseUnit(args[1])
	if err != nil {
		return "", err
	}
	return l10n.RelativeTime(amount, unit, loc)
}

func renderSince(loc l10n.Locale, args []string) (string, error) {
	now := time.Now()
	if fmtFlags.now != "" {
		t, err := l10n.ToTime(instantArg(fmtFlags.now))
		if err != nil {
			return "", fmt.Errorf("parsing --now: %w", err)
		}
		now = t
	}
	return l10n.Since(instantArg(args[0]), now, loc)
}

func renderExperience(loc l10n.Locale, args []string) (string, error) {
	months, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return "", fmt.Errorf("%w: %q", l10n.ErrInvalidNumber, args[0])
	}
	return l10n.Experience(months, loc)
}
