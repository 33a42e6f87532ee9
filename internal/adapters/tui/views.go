package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/hxlin/tomato-cli/internal/clock"
	"github.com/hxlin/tomato-cli/internal/domain"
)

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.pane {
	case paneTasks:
		return m.viewTasks()
	case paneStats:
		return m.viewStats()
	case paneAchievements:
		return m.viewAchievements()
	case paneCalendar:
		return m.viewCalendar()
	default:
		return m.viewTimer()
	}
}

// viewTimer renders the main countdown screen on a fixed row grid so that
// mouse hit testing in partAt stays in sync with what is drawn.
func (m Model) viewTimer() string {
	state := m.svc.ClockState()
	durations := m.svc.Durations()

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
	taskStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorTask))

	lines := make([]string, timerRows)
	lines[rowTitle] = titleStyle.Render(fmt.Sprintf("%s Tomato", m.theme.IconApp))
	lines[rowTabs] = m.renderModeTabs(state.Mode)

	timeStr := formatClock(state.RemainingSeconds)
	minuteColor, secondColor := m.timerColors(state.Running)
	big := renderBigTime(timeStr, minuteColor, secondColor, m.width)
	for i, line := range strings.Split(big, "\n") {
		if bigTimeRow+i < rowProgress {
			lines[bigTimeRow+i] = line
		}
	}

	total := durations[state.Mode] * 60
	percent := 0.0
	if total > 0 {
		percent = 1.0 - float64(state.RemainingSeconds)/float64(total)
	}
	if percent < 0 {
		percent = 0
	}
	lines[rowProgress] = m.progress.ViewAs(percent)
	lines[rowStatus] = m.renderStatus(state.Running)

	lines[rowTask] = taskStyle.Render(m.renderActiveTask())
	lines[rowHelp] = helpStyle.Render("[space] start/pause  [r]eset  [1/2/3] mode  [t]asks  [s]tats  [a]wards  [c]alendar  [q]uit")

	var b strings.Builder
	for i := 0; i < m.topPad(); i++ {
		b.WriteString("\n")
	}
	center := lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center)
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(center.Render(line))
	}
	return b.String()
}

// renderModeTabs draws the three mode labels with the current one
// highlighted.
func (m Model) renderModeTabs(current domain.Mode) string {
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(m.modeColor(current))
	idleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	parts := make([]string, 0, 3)
	for i, mode := range domain.Modes() {
		label := fmt.Sprintf("%d·%s", i+1, mode.Label())
		if mode == current {
			parts = append(parts, activeStyle.Render("["+label+"]"))
		} else {
			parts = append(parts, idleStyle.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderStatus(running bool) string {
	if part, ok := m.svc.DragPart(); ok {
		editStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorAchievement))
		which := "minutes"
		if part == clock.PartSeconds {
			which = "seconds"
		}
		return editStyle.Render("✎ adjusting " + which)
	}

	if m.flash != "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorAchievement)).Render(m.flash)
	}
	if m.err != nil {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C")).Render(m.err.Error())
	}

	if running {
		return lipgloss.NewStyle().Foreground(m.modeColor(m.svc.ClockState().Mode)).Render("● running")
	}
	pausedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorPaused))
	return pausedStyle.Render(m.theme.IconPaused + " paused · scroll or drag the digits to adjust")
}

func (m Model) renderActiveTask() string {
	if m.activeID == nil {
		return "No active task · press t to pick one"
	}
	for _, task := range m.taskList {
		if task.ID == *m.activeID {
			return fmt.Sprintf("%s %s (%d/%d 🍅)", m.theme.IconTask, task.Text, task.CompletedPomodoros, task.EstimatedPomodoros)
		}
	}
	return "No active task · press t to pick one"
}

func (m Model) viewTasks() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle)).MarginBottom(1)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
	taskStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorTask))
	doneStyle := lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color(m.theme.ColorPaused))
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(m.modeColor(domain.ModeFocus))

	var sections []string
	sections = append(sections, titleStyle.Render(fmt.Sprintf("%s Tasks", m.theme.IconTask)))

	if m.adding {
		sections = append(sections, m.taskInput.View())
		sections = append(sections, "")
		sections = append(sections, helpStyle.Render("[enter] add  [esc] cancel"))
	} else {
		if len(m.taskList) == 0 {
			sections = append(sections, taskStyle.Render("No tasks yet. Press n to add one."))
		}
		for i, task := range m.taskList {
			marker := "  "
			if m.activeID != nil && task.ID == *m.activeID {
				marker = "▶ "
			}
			check := "[ ]"
			if task.Completed {
				check = "[x]"
			}
			line := fmt.Sprintf("%s%s %s (%d/%d)", marker, check, task.Text, task.CompletedPomodoros, task.EstimatedPomodoros)

			style := taskStyle
			if task.Completed {
				style = doneStyle
			}
			if i == m.cursor {
				style = cursorStyle
			}
			sections = append(sections, style.Render(line))
		}
		sections = append(sections, "")
		sections = append(sections, helpStyle.Render("[n]ew  [enter] focus  [x] done  [d]elete  [j/k] move  [esc] back"))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) viewStats() string {
	log := m.svc.Log()
	now := time.Now()

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle)).MarginBottom(1)
	statStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorTask))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
	barStyle := lipgloss.NewStyle().Foreground(m.modeColor(domain.ModeFocus))

	var sections []string
	sections = append(sections, titleStyle.Render(fmt.Sprintf("%s Stats", m.theme.IconStats)))
	sections = append(sections, statStyle.Render(fmt.Sprintf("Sessions: %d    Focus time: %s", log.Len(), formatMinutes(log.TotalMinutes()))))
	sections = append(sections, statStyle.Render(fmt.Sprintf("Today: %d sessions    Streak: %d days", len(log.OnDay(now)), domain.Streak(log.All(), now))))
	sections = append(sections, "")

	// Last seven days as a bar chart, today rightmost.
	maxCount := 1
	counts := make([]int, 7)
	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, i-6)
		counts[i] = len(log.OnDay(day))
		if counts[i] > maxCount {
			maxCount = counts[i]
		}
	}
	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, i-6)
		width := counts[i] * 20 / maxCount
		bar := strings.Repeat("█", width)
		if counts[i] > 0 && width == 0 {
			bar = "▏"
		}
		sections = append(sections, fmt.Sprintf("%s %s %s",
			statStyle.Render(day.Format("Mon")),
			barStyle.Render(fmt.Sprintf("%-20s", bar)),
			helpStyle.Render(fmt.Sprintf("%d", counts[i]))))
	}

	sections = append(sections, "")
	sections = append(sections, helpStyle.Render("[esc] back"))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) viewAchievements() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle)).MarginBottom(1)
	unlockedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorAchievement))
	lockedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorPaused))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	unlocked := make(map[domain.AchievementID]bool)
	for _, id := range m.svc.UnlockedAchievements() {
		unlocked[id] = true
	}

	var sections []string
	sections = append(sections, titleStyle.Render(fmt.Sprintf("%s Achievements", m.theme.IconTrophy)))
	for _, def := range domain.AchievementDefs() {
		if unlocked[def.ID] {
			sections = append(sections, unlockedStyle.Render(fmt.Sprintf("%s %s — %s", m.theme.IconTrophy, def.Name, def.Description)))
		} else {
			sections = append(sections, lockedStyle.Render(fmt.Sprintf("🔒 %s — %s", def.Name, def.Description)))
		}
	}
	sections = append(sections, "")
	sections = append(sections, helpStyle.Render(fmt.Sprintf("%d of %d unlocked · [esc] back", len(unlocked), len(domain.AchievementDefs()))))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// viewCalendar renders a heat grid of the last twelve weeks, one column per
// week, one row per weekday.
func (m Model) viewCalendar() string {
	const weeks = 12

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle)).MarginBottom(1)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorTask))

	log := m.svc.Log()
	counts := make(map[string]int)
	for _, s := range log.All() {
		counts[s.Timestamp.Format("2006-01-02")]++
	}

	now := time.Now()
	// Sunday of the current week anchors the rightmost column.
	weekStart := now.AddDate(0, 0, -int(now.Weekday()))

	var sections []string
	sections = append(sections, titleStyle.Render("🗓 Last 12 Weeks"))

	dayNames := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	for day := 0; day < 7; day++ {
		var row strings.Builder
		row.WriteString(labelStyle.Render(dayNames[day] + " "))
		for week := weeks - 1; week >= 0; week-- {
			date := weekStart.AddDate(0, 0, day-7*week)
			if date.After(now) {
				row.WriteString("  ")
				continue
			}
			row.WriteString(heatCell(counts[date.Format("2006-01-02")]))
		}
		sections = append(sections, row.String())
	}

	sections = append(sections, "")
	sections = append(sections, helpStyle.Render("less ░ ▒ ▓ █ more · [esc] back"))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// heatCell picks a glyph by session count for the calendar grid.
func heatCell(count int) string {
	switch {
	case count == 0:
		return lipgloss.NewStyle().Faint(true).Render("· ")
	case count <= 1:
		return "░ "
	case count <= 3:
		return "▒ "
	case count <= 5:
		return "▓ "
	default:
		return "█ "
	}
}

// modeColor returns the theme color for a mode.
func (m Model) modeColor(mode domain.Mode) lipgloss.Color {
	if mode == domain.ModeFocus {
		return lipgloss.Color(m.theme.ColorFocus)
	}
	return lipgloss.Color(m.theme.ColorBreak)
}

// timerColors picks the big time colors, highlighting the half being
// dragged.
func (m Model) timerColors(running bool) (lipgloss.Color, lipgloss.Color) {
	base := m.modeColor(m.svc.ClockState().Mode)
	if !running {
		base = lipgloss.Color(m.theme.ColorPaused)
	}

	minuteColor, secondColor := base, base
	if part, ok := m.svc.DragPart(); ok {
		highlight := lipgloss.Color(m.theme.ColorAchievement)
		if part == clock.PartSeconds {
			secondColor = highlight
		} else {
			minuteColor = highlight
		}
	}
	return minuteColor, secondColor
}

// formatClock renders remaining seconds as MM:SS.
func formatClock(remaining int) string {
	return fmt.Sprintf("%02d:%02d", remaining/60, remaining%60)
}

// formatMinutes renders a minute total as "3h 25m" or "45m".
func formatMinutes(minutes int) string {
	if minutes >= 60 {
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}
