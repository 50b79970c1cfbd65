package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/bouncer/status"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Width(10)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)
)

// Summary is the session report printed after the terminal is restored
type Summary struct {
	Runtime  time.Duration
	Spawns   int64
	Bounces  int64
	Launches int64
	Goals    int64
}

func summaryFrom(reg *status.Registry, runtime time.Duration) Summary {
	return Summary{
		Runtime:  runtime,
		Spawns:   reg.Int(status.KeySpawns),
		Bounces:  reg.Int(status.KeyBounces),
		Launches: reg.Int(status.KeyLaunches),
		Goals:    reg.Int(status.KeyGoals),
	}
}

func (s Summary) row(label string, value any) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(fmt.Sprint(value)))
}

// Render lays the summary out as a bordered box
func (s Summary) Render() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("bouncer"),
		s.row("runtime", s.Runtime.Round(time.Second)),
		s.row("spawned", s.Spawns),
		s.row("bounces", s.Bounces),
		s.row("launches", s.Launches),
		s.row("goals", s.Goals),
	)
	return boxStyle.Render(body)
}
