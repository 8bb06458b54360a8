package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/riordanpawley/outcome/internal/scenario"
	"github.com/riordanpawley/outcome/internal/ui/statusbar"
	"github.com/riordanpawley/outcome/internal/ui/styles"
	"github.com/riordanpawley/outcome/internal/ui/toast"
)

// View renders the current state as a string
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// The status bar takes the last row
	bodyHeight := max(m.height-1, 0)
	body := m.renderBody(bodyHeight)

	if toastView := toast.New(m.styles).Render(m.toasts, m.width); toastView != "" {
		body = placeBottomRight(body, toastView, m.width, bodyHeight)
	}

	sb := statusbar.New(m.Mode(), m.width, m.styles).WithInfo(m.statusInfo())
	view := lipgloss.JoinVertical(lipgloss.Left, body, sb.Render())

	return m.overlay.Overlay(view)
}

func (m *Model) renderBody(height int) string {
	header := m.styles.Header.Render("Outcome demo")

	rows := make([]string, 0, len(m.scenarios)+2)
	for i, sc := range m.scenarios {
		rows = append(rows, m.renderScenario(i, sc))
	}
	if len(m.scenarios) == 0 {
		rows = append(rows, m.styles.Muted.Render("No scenarios"))
	}

	if m.running {
		rows = append(rows, "", m.spinner.View()+" "+m.styles.Muted.Render("Running "+m.scenarios[m.target].Name+"..."))
	} else if sc, ok := m.selected(); ok && sc.Description != "" {
		rows = append(rows, "", m.styles.Muted.Render(sc.Description))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, header, strings.Join(rows, "\n"))
	content = m.styles.Screen.Render(content)

	return lipgloss.NewStyle().
		Width(m.width).
		Height(height).
		MaxHeight(height).
		Render(content)
}

func (m *Model) renderScenario(i int, sc scenario.Scenario) string {
	tag := m.styles.ScenarioTag.
		Background(styles.ScenarioTagColor(sc.Variant)).
		Render(sc.Variant)

	style := m.styles.Scenario
	marker := "  "
	if i == m.cursor {
		style = m.styles.ScenarioActive
		marker = "▸ "
	}
	return style.Render(marker+sc.Name) + " " + tag
}

func (m *Model) selected() (scenario.Scenario, bool) {
	if m.cursor < 0 || m.cursor >= len(m.scenarios) {
		return scenario.Scenario{}, false
	}
	return m.scenarios[m.cursor], true
}

func (m *Model) statusInfo() string {
	sc, ok := m.selected()
	if !ok {
		return ""
	}
	return fmt.Sprintf("%d/%d %s", m.cursor+1, len(m.scenarios), sc.Name)
}

// placeBottomRight draws fg over the bottom-right corner of bg. Both are
// padded or cut to width x height first.
func placeBottomRight(bg, fg string, width, height int) string {
	bgLines := strings.Split(bg, "\n")
	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}
	fgLines := strings.Split(fg, "\n")
	fgWidth := lipgloss.Width(fg)
	x := max(width-fgWidth, 0)
	top := max(height-len(fgLines), 0)

	for i, fl := range fgLines {
		row := top + i
		if row >= len(bgLines) {
			break
		}
		line := bgLines[row]
		left := ansi.Truncate(line, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		bgLines[row] = left + fl
	}
	return strings.Join(bgLines[:height], "\n")
}
