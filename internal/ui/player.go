// Copyright 2026 The fmod-go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ui is the terminal interface of fmodplay.
package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fmodgo/fmod/internal/cli"
)

// Status is a snapshot of the playing channel.
type Status struct {
	Name     string
	Position time.Duration
	Length   time.Duration
	Playing  bool
	Paused   bool
	Volume   float32
	CPU      float32
	Channels int
	// Levels holds the peak level of each output channel, when metered.
	Levels []float32
}

// Player is what the playback model drives. Update is called on every tick
// and must pump the engine.
type Player interface {
	Update() (Status, error)
	SetPaused(paused bool) error
	SetVolume(volume float32) error
	Seek(offset time.Duration) error
}

// TickInterval is how often the model polls the player.
const TickInterval = 50 * time.Millisecond

const (
	volumeStep = 0.05
	seekStep   = 5 * time.Second
	maxVolume  = 2
)

type tickMsg time.Time

// Model plays until the channel ends or the user quits.
type Model struct {
	player   Player
	status   Status
	bar      progress.Model
	err      error
	width    int
	quitting bool
}

// NewModel returns a Model driving p.
func NewModel(p Player) *Model {
	return &Model{
		player: p,
		bar: progress.New(
			progress.WithGradient(string(cli.Indigo), string(cli.Teal)),
			progress.WithWidth(40),
			progress.WithoutPercentage(),
		),
	}
}

// Err returns the error that stopped playback, if any.
func (m *Model) Err() error { return m.err }

func tick() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init starts polling.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.poll, tick())
}

func (m *Model) poll() tea.Msg {
	return tickMsg(time.Now())
}

// Update handles ticks and keys.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = max(10, min(msg.Width-20, 60))
		return m, nil

	case tickMsg:
		st, err := m.player.Update()
		if err != nil {
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		m.status = st
		if !st.Playing {
			m.quitting = true
			return m, tea.Quit
		}
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case " ", "p":
			m.apply(m.player.SetPaused(!m.status.Paused))
			m.status.Paused = !m.status.Paused
		case "+", "=", "up":
			m.setVolume(m.status.Volume + volumeStep)
		case "-", "_", "down":
			m.setVolume(m.status.Volume - volumeStep)
		case "right", "l":
			m.apply(m.player.Seek(seekStep))
		case "left", "h":
			m.apply(m.player.Seek(-seekStep))
		}
		if m.quitting {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) setVolume(v float32) {
	v = float32(math.Round(float64(v)*100) / 100)
	v = max(0, min(v, maxVolume))
	if m.apply(m.player.SetVolume(v)) {
		m.status.Volume = v
	}
}

// apply records err as fatal and reports whether the call succeeded.
func (m *Model) apply(err error) bool {
	if err != nil {
		m.err = err
		m.quitting = true
		return false
	}
	return true
}

// View renders the player.
func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(cli.TitleStyle.Render("fmodplay"))
	s.WriteString("  ")
	s.WriteString(cli.ValueStyle.Render(m.status.Name))
	s.WriteString("\n\n")

	percent := 0.0
	if m.status.Length > 0 {
		percent = math.Min(1, float64(m.status.Position)/float64(m.status.Length))
	}
	s.WriteString(m.bar.ViewAs(percent))
	s.WriteString("  ")
	s.WriteString(cli.FormatDuration(m.status.Position))
	if m.status.Length > 0 {
		s.WriteString(" / ")
		s.WriteString(cli.FormatDuration(m.status.Length))
	}
	s.WriteString("\n\n")

	label := lipgloss.NewStyle().Faint(true)
	state := "Playing"
	if m.status.Paused {
		state = "Paused"
	}
	s.WriteString(label.Render("State: "))
	s.WriteString(fmt.Sprintf("%-8s", state))
	s.WriteString(label.Render("  Volume: "))
	s.WriteString(fmt.Sprintf("%3.0f%%", m.status.Volume*100))
	s.WriteString(label.Render("  Channels: "))
	s.WriteString(fmt.Sprintf("%d", m.status.Channels))
	s.WriteString(label.Render("  CPU: "))
	s.WriteString(fmt.Sprintf("%4.1f%%", m.status.CPU))
	s.WriteString("\n")

	if len(m.status.Levels) > 0 {
		s.WriteString("\n")
		s.WriteString(renderMeters(m.status.Levels, 30))
	}

	s.WriteString("\n")
	s.WriteString(label.Render("space pause · +/- volume · ←/→ seek · q quit"))

	if m.err != nil {
		s.WriteString("\n")
		s.WriteString(cli.ErrorStyle.Render("Error: "))
		s.WriteString(m.err.Error())
	}

	return cli.BoxStyle.Render(s.String())
}

// renderMeters draws one horizontal bar per channel, scaled in dB from -60
// to 0.
func renderMeters(levels []float32, width int) string {
	var s strings.Builder
	for i, l := range levels {
		db := -60.0
		if l > 0 {
			db = math.Max(-60, 20*math.Log10(float64(l)))
		}
		filled := int(math.Round((db + 60) / 60 * float64(width)))
		filled = max(0, min(filled, width))
		s.WriteString(fmt.Sprintf("%2d ", i))
		s.WriteString(lipgloss.NewStyle().Foreground(cli.Teal).Render(strings.Repeat("█", filled)))
		s.WriteString(strings.Repeat("░", width-filled))
		s.WriteString(fmt.Sprintf(" %6.1f dB\n", db))
	}
	return s.String()
}
