package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"calsheet/config"
	"calsheet/internal/calendar"
	"calsheet/internal/i18n"
)

var flagMonth string

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Print a month grid",
	Long: `Print the day grid for a month without starting the picker.
Days before today are shown in parentheses.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := i18n.Init(cfg.Language); err != nil {
			return fmt.Errorf("init i18n: %w", err)
		}

		now := time.Now()
		month := now
		if flagMonth != "" {
			t, err := time.ParseInLocation("2006-01", flagMonth, now.Location())
			if err != nil {
				return fmt.Errorf("invalid month %q: want YYYY-MM", flagMonth)
			}
			month = t
		}
		return writeGrid(cmd.OutOrStdout(), month, now)
	},
}

func init() {
	gridCmd.Flags().StringVarP(&flagMonth, "month", "m", "", "month to print (YYYY-MM), defaults to the current month")
}

// writeGrid prints month as plain text, one week per line.
func writeGrid(w io.Writer, month, now time.Time) error {
	var b strings.Builder
	b.WriteString(month.Format("January 2006"))
	b.WriteString("\n")

	for _, name := range i18n.Weekdays() {
		b.WriteString(fmt.Sprintf("%5s", name))
	}
	b.WriteString("\n")

	for _, row := range calendar.Rows(calendar.BuildGrid(month)) {
		var line strings.Builder
		for _, cell := range row {
			d, ok := cell.Day()
			switch {
			case !ok:
				line.WriteString(strings.Repeat(" ", 5))
			case calendar.IsPastDate(d, now):
				line.WriteString(fmt.Sprintf("%5s", fmt.Sprintf("(%d)", d.Day())))
			default:
				line.WriteString(fmt.Sprintf("%5d", d.Day()))
			}
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
