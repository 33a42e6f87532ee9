package cmd

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/hxlin/tomato-cli/internal/domain"
)

var statsDays int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a dashboard of focus statistics",
	Long:  `Display a terminal dashboard with session counts, focus minutes, the current streak, and a per-day bar chart.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		now := time.Now()

		if statsDays < 1 {
			statsDays = 7
		}

		sessions, err := app.storage.Sessions().FindAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to load sessions: %w", err)
		}

		fmt.Println()
		renderDashboard(sessions, now)
		return nil
	},
}

func init() {
	statsCmd.Flags().IntVarP(&statsDays, "days", "d", 7, "Number of days in the bar chart")
}

func renderDashboard(sessions []*domain.Session, now time.Time) {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E74C3C"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F1C40F"))
	barColor := lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C"))

	log := domain.NewSessionLog(sessions)

	// Header
	fmt.Printf("  %s\n", titleStyle.Render("🍅 Tomato Stats"))
	fmt.Printf("  %s\n\n", dimStyle.Render(strings.Repeat("─", 40)))

	// Summary line
	fmt.Printf("  Total: %s sessions, %s focused\n",
		valueStyle.Render(fmt.Sprintf("%d", log.Len())),
		valueStyle.Render(formatHours(float64(log.TotalMinutes())/60)),
	)
	fmt.Printf("  Today: %s sessions   Streak: %s\n\n",
		valueStyle.Render(fmt.Sprintf("%d", len(log.OnDay(now)))),
		valueStyle.Render(fmt.Sprintf("%d day(s)", domain.Streak(sessions, now))),
	)

	if log.Len() == 0 {
		fmt.Printf("  %s\n\n", dimStyle.Render("No completed sessions yet."))
		return
	}

	// Per-day bar chart, sized to the terminal.
	fmt.Printf("  %s\n", dimStyle.Render(fmt.Sprintf("Sessions per day (last %d days)", statsDays)))

	counts := make([]int, statsDays)
	maxCount := 0
	for i := range counts {
		day := now.AddDate(0, 0, -(statsDays - 1 - i))
		counts[i] = len(log.OnDay(day))
		if counts[i] > maxCount {
			maxCount = counts[i]
		}
	}

	maxBarWidth := barChartWidth()
	for i, count := range counts {
		day := now.AddDate(0, 0, -(statsDays - 1 - i))
		barWidth := 0
		if maxCount > 0 {
			barWidth = int(math.Round(float64(count) / float64(maxCount) * float64(maxBarWidth)))
		}
		if barWidth < 1 && count > 0 {
			barWidth = 1
		}
		fmt.Printf("  %s %s %d\n",
			dimStyle.Render(day.Format("Mon 01-02")),
			barColor.Render(buildBar(barWidth)),
			count,
		)
	}
	fmt.Println()
}

// barChartWidth sizes bars to the terminal, leaving room for labels.
func barChartWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return 30
	}
	width := w - 20
	if width < 10 {
		width = 10
	}
	if width > 60 {
		width = 60
	}
	return width
}

// buildBar creates a horizontal bar using block characters.
func buildBar(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat("█", width)
}

// formatHours formats a float hours value as "Xh Ym".
func formatHours(h float64) string {
	if h < 0.01 {
		return "0m"
	}
	hours := int(h)
	minutes := int(math.Round((h - float64(hours)) * 60))
	if hours > 0 && minutes > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dm", minutes)
}
