package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MaRkS1234567/MySite-web/core/locale"
	"github.com/MaRkS1234567/MySite-web/core/pricing"
)

var (
	estimateFormat    string
	estimateIntensity string
	estimateFrequency string
	estimateGoal      string
	estimateDuration  int
	estimateUrgent    bool
	estimateTable     string
	estimateLang      string
)

// estimateCmd computes a lesson price range
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Compute a lesson price range",
	Long: `Compute the per-lesson and monthly price range for a lesson
configuration, using the same table as the site.`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVar(&estimateFormat, "format", "individual", "lesson format (individual, pair, mini-group)")
	estimateCmd.Flags().StringVar(&estimateIntensity, "intensity", "standard", "intensity tier (light, standard, intensive)")
	estimateCmd.Flags().StringVar(&estimateFrequency, "frequency", "2x", "lessons per week (1x, 2x, 3x)")
	estimateCmd.Flags().StringVar(&estimateGoal, "goal", "oge", "goal (oge, ege, programming, math, grades)")
	estimateCmd.Flags().IntVar(&estimateDuration, "duration", 60, "lesson duration in minutes (60 or 90)")
	estimateCmd.Flags().BoolVar(&estimateUrgent, "urgent", false, "start as soon as possible")
	estimateCmd.Flags().StringVar(&estimateTable, "table", "", "HCL rates file overriding the built-in table")
	estimateCmd.Flags().StringVar(&estimateLang, "lang", "ru", "output language (ru or en)")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cfg, err := parseEstimateFlags()
	if err != nil {
		return err
	}

	table := pricing.DefaultTable()
	if estimateTable != "" {
		table, err = pricing.LoadTable(estimateTable)
		if err != nil {
			return err
		}
	}
	lang := locale.Parse(estimateLang)

	price := table.Calculate(cfg)
	monthly := pricing.MonthlyEstimate(price, cfg.Frequency)
	selection := pricing.Selection{
		Config:       cfg,
		EstimatedMin: price.Min,
		EstimatedMax: price.Max,
	}

	fmt.Println(selection.Summary(lang))
	fmt.Printf("За занятие: %s–%s ₽\n", pricing.FormatPrice(price.Min), pricing.FormatPrice(price.Max))
	fmt.Printf("В месяц (%d занятий): %s–%s ₽\n",
		cfg.Frequency.LessonsPerMonth(),
		pricing.FormatPrice(monthly.Min), pricing.FormatPrice(monthly.Max))
	fmt.Println()
	fmt.Println("В тариф входит:")
	for _, line := range cfg.Intensity.Includes(lang) {
		fmt.Printf("  - %s\n", line)
	}
	return nil
}

func parseEstimateFlags() (pricing.Config, error) {
	var cfg pricing.Config
	var err error
	if cfg.Format, err = pricing.ParseFormat(estimateFormat); err != nil {
		return cfg, err
	}
	if cfg.Intensity, err = pricing.ParseIntensity(estimateIntensity); err != nil {
		return cfg, err
	}
	if cfg.Frequency, err = pricing.ParseFrequency(estimateFrequency); err != nil {
		return cfg, err
	}
	if cfg.Goal, err = pricing.ParseGoal(estimateGoal); err != nil {
		return cfg, err
	}
	if cfg.Duration, err = pricing.ParseDuration(estimateDuration); err != nil {
		return cfg, err
	}
	cfg.Urgency = pricing.UrgencyLater
	if estimateUrgent {
		cfg.Urgency = pricing.UrgencySoon
	}
	return cfg, nil
}
