package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"node.town/julianday/jd"
)

var resultStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#ff8800")).
	Padding(0, 1)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Convert interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, _, _, err := loadConfig()
		if err != nil {
			return err
		}

		var reverse bool
		err = huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[bool]().
					Title("Convert").
					Options(
						huh.NewOption("Julian day → datetime", false),
						huh.NewOption("datetime → Julian day", true),
					).
					Value(&reverse),
			),
		).Run()
		if err != nil {
			return fmt.Errorf("form input: %w", err)
		}

		var value string
		err = huh.NewInput().
			Title(pickPrompt(reverse)).
			Value(&value).
			Validate(func(s string) error {
				_, _, err := convert(s, reverse, cfg.Precision)
				return err
			}).
			Run()
		if err != nil {
			return fmt.Errorf("form input: %w", err)
		}

		output, _, err := convert(value, reverse, cfg.Precision)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), resultStyle.Render(pickSummary(value, output, reverse)))
		return nil
	},
}

func pickPrompt(reverse bool) string {
	if reverse {
		return "Datetime (YYYY-MM-DD HH:MM:SS)"
	}
	return "Julian day"
}

func pickSummary(input, output string, reverse bool) string {
	if reverse {
		return fmt.Sprintf("%s UTC\nJD %s", input, output)
	}
	julianDay, err := jd.ParseJulianDay(input)
	if err != nil {
		return fmt.Sprintf("JD %s\n%s UTC", input, output)
	}
	return fmt.Sprintf("JD %s\n%s UTC, %s", input, output, jd.Weekday(julianDay))
}
