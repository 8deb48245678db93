package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/blink-new/study-saathi-app-dwaa98jh/core/planner"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#007AFF"))
	headStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8E8E93"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF3B30"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#34C759"))

	priorityStyles = map[planner.Priority]lipgloss.Style{
		planner.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF3B30")).Bold(true),
		planner.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF9500")),
		planner.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("#34C759")),
	}

	statusStyles = map[planner.Status]lipgloss.Style{
		planner.StatusPending:    lipgloss.NewStyle().Foreground(lipgloss.Color("#8E8E93")),
		planner.StatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("#007AFF")),
		planner.StatusCompleted:  lipgloss.NewStyle().Foreground(lipgloss.Color("#34C759")).Strikethrough(true),
	}
)

// render styles s for the terminal cli writes to; plain text when it is not a terminal.
func (cli *commandLine) render(style lipgloss.Style, s string) string {
	if cli.renderer == nil {
		cli.renderer = lipgloss.NewRenderer(cli.out)
	}
	return style.Renderer(cli.renderer).Render(s)
}

func (cli *commandLine) priorityLabel(p planner.Priority) string {
	if style, ok := priorityStyles[p]; ok {
		return cli.render(style, string(p))
	}
	return string(p)
}

func (cli *commandLine) statusLabel(s planner.Status) string {
	if style, ok := statusStyles[s]; ok {
		return cli.render(style, string(s))
	}
	return string(s)
}

// subjectLabel renders a subject in its class color.
func (cli *commandLine) subjectLabel(subject, color string) string {
	if color == "" {
		color = planner.SubjectColor(subject)
	}
	return cli.render(lipgloss.NewStyle().Foreground(lipgloss.Color(color)), subject)
}
