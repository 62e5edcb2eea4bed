package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/resume-insight/internal/l10n"
	"github.com/spigell/resume-insight/internal/saved"
)

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "List saved comparisons, restore one with compare --saved ID",
	RunE: func(cmd *cobra.Command, _ []string) error {
		loc, err := currentLocale()
		if err != nil {
			return err
		}

		store, err := saved.Load(viper.GetString("saved-file"))
		if err != nil {
			return fmt.Errorf("loading saved comparisons: %w", err)
		}

		vacancy, _ := cmd.Flags().GetString("vacancy")
		return listSaved(cmd.OutOrStdout(), store, vacancy, loc)
	},
}

func init() {
	rootCmd.AddCommand(savedCmd)

	savedCmd.Flags().String("vacancy", "", "only comparisons of this vacancy")
}

func listSaved(out io.Writer, store *saved.Store, vacancy string, loc l10n.Locale) error {
	items := store.Items
	if vacancy != "" {
		items = store.ForVacancy(vacancy)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, c := range items {
		created, err := l10n.DateTime(c.CreatedAt, loc)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.ID, c.VacancyID, created, strings.Join(c.ResumeIDs, ","))
	}
	return tw.Flush()
}
