package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// digitMap maps each digit character (0-9) and colon to a 5-line block
// representation. Every digit is exactly 4 cells wide and the colon 1 cell,
// so the rendered MM:SS block has a fixed geometry that mouse hit testing
// can rely on.
var digitMap = map[rune][5]string{
	'0': {
		"████",
		"█  █",
		"█  █",
		"█  █",
		"████",
	},
	'1': {
		"  █ ",
		" ██ ",
		"  █ ",
		"  █ ",
		" ███",
	},
	'2': {
		"████",
		"   █",
		"████",
		"█   ",
		"████",
	},
	'3': {
		"████",
		"   █",
		"████",
		"   █",
		"████",
	},
	'4': {
		"█  █",
		"█  █",
		"████",
		"   █",
		"   █",
	},
	'5': {
		"████",
		"█   ",
		"████",
		"   █",
		"████",
	},
	'6': {
		"████",
		"█   ",
		"████",
		"█  █",
		"████",
	},
	'7': {
		"████",
		"   █",
		"  █ ",
		" █  ",
		" █  ",
	},
	'8': {
		"████",
		"█  █",
		"████",
		"█  █",
		"████",
	},
	'9': {
		"████",
		"█  █",
		"████",
		"   █",
		"████",
	},
	':': {
		" ",
		"█",
		" ",
		"█",
		" ",
	},
}

// Fixed geometry of the rendered "MM:SS" block. Columns are relative to the
// block's left edge.
const (
	bigTimeHeight   = 5
	bigTimeWidth    = 21 // 4 digits of 4 cells, a 1-cell colon, 4 separators
	bigMinutesEnd   = 9  // minutes occupy columns [0, 9)
	bigSecondsStart = 12 // seconds occupy columns [12, 21)
)

// renderBigTime renders "MM:SS" as a 5-line block. minuteColor and
// secondColor style the two halves independently so the part being edited
// can be highlighted. Falls back to a single styled line on narrow
// terminals.
func renderBigTime(timeStr string, minuteColor, secondColor lipgloss.Color, width int) string {
	if width < 40 {
		style := lipgloss.NewStyle().Bold(true).Foreground(minuteColor)
		return style.Render(timeStr)
	}

	var minuteLines, restLines [5]string
	past := false
	for _, ch := range timeStr {
		glyph, ok := digitMap[ch]
		if !ok {
			continue
		}
		if ch == ':' {
			past = true
		}
		for i := 0; i < bigTimeHeight; i++ {
			if past {
				restLines[i] += " "
				restLines[i] += glyph[i]
			} else {
				if minuteLines[i] != "" {
					minuteLines[i] += " "
				}
				minuteLines[i] += glyph[i]
			}
		}
	}

	minuteStyle := lipgloss.NewStyle().Bold(true).Foreground(minuteColor)
	secondStyle := lipgloss.NewStyle().Bold(true).Foreground(secondColor)

	styled := make([]string, bigTimeHeight)
	for i := 0; i < bigTimeHeight; i++ {
		styled[i] = minuteStyle.Render(minuteLines[i]) + secondStyle.Render(restLines[i])
	}

	return strings.Join(styled, "\n")
}
