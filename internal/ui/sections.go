package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/emberterm/ember/internal/config"
)

// View implements tea.Model.
func (m Model) View() string {
	sections := []string{
		m.renderHeader(),
		m.renderSource(),
	}
	if m.snap.LastError != nil {
		sections = append(sections, m.renderError())
	}
	if m.snap.HasConfig {
		sections = append(sections, m.renderSettings())
		if m.showEffective {
			sections = append(sections, m.renderEffective())
		}
	}
	sections = append(sections, m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	parts := []string{m.styles.Logo.Render("emberconf")}

	if !m.snap.LoadedAt.IsZero() {
		stamp := m.snap.LoadedAt.Format("15:04:05")
		if m.snap.Reloads > 0 {
			stamp += fmt.Sprintf(" (%d reloads)", m.snap.Reloads)
		}
		parts = append(parts, m.styles.Muted.Render(stamp))
	}

	parts = append(parts, m.styles.Faint.Render("theme: "+m.theme.Name))

	return m.styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

// renderSource shows the candidate paths in probe order and which one, if
// any, supplied the configuration.
func (m Model) renderSource() string {
	var lines []string
	lines = append(lines, m.styles.Title.Render("Source"))

	for _, candidate := range m.candidates {
		marker := m.styles.Faint.Render("○")
		style := m.styles.Muted
		if candidate == m.snap.Path && m.snap.Path != "" {
			marker = m.styles.Success.Render("●")
			style = m.styles.Value
		}
		lines = append(lines, marker+" "+style.Render(candidate))
	}

	if m.snap.HasConfig && m.snap.Path == "" {
		lines = append(lines, m.styles.Warning.Render("no config file, using built-in defaults"))
	}

	return m.styles.Panel.Render(strings.Join(lines, "\n"))
}

func (m Model) renderSettings() string {
	cfg := m.snap.Config
	dpi := cfg.DPI()
	font := cfg.Font()
	off := font.Offset()

	timer := m.styles.Muted.Render("off")
	if cfg.RenderTimer() {
		timer = m.styles.Success.Render("on")
	}

	lines := []string{
		m.styles.Title.Render("Rendering"),
		m.kv("dpi", formatFloat(dpi.X())+" x "+formatFloat(dpi.Y())),
		m.kv("font", fmt.Sprintf("%s %s %spt", font.Family(), font.Style(), formatFloat(font.Size()))),
		m.kv("offset", formatFloat(off.X())+" / "+formatFloat(off.Y())),
		m.styles.Label.Render("render timer  ") + timer,
	}
	return m.styles.Panel.Render(strings.Join(lines, "\n"))
}

func (m Model) renderEffective() string {
	out, err := yaml.Marshal(m.snap.Config)
	if err != nil {
		return m.styles.Panel.Render(m.styles.Danger.Render("serialize config: " + err.Error()))
	}
	body := strings.TrimRight(string(out), "\n")
	return m.styles.Panel.Render(
		m.styles.Title.Render("Effective config") + "\n" +
			m.styles.Faint.Render(body))
}

func (m Model) renderError() string {
	err := m.snap.LastError
	badge := m.styles.KindBadge(classifyKind(err)).Render(strings.ToUpper(classifyKind(err)))
	return m.styles.Panel.Render(badge + " " + m.styles.Danger.Render(err.Error()))
}

func (m Model) renderFooter() string {
	return m.styles.Footer.Width(m.width).Render(m.help.View(m.keys))
}

func (m Model) kv(label, value string) string {
	return m.styles.Label.Render(fmt.Sprintf("%-13s", label)) + " " + m.styles.Value.Render(value)
}

// classifyKind names the load-error kind for badge styling.
func classifyKind(err error) string {
	var envErr *config.EnvError
	var ioErr *config.IOError
	var schemaErr *config.SchemaError
	switch {
	case errors.Is(err, config.ErrNotFound):
		return "not found"
	case errors.As(err, &envErr):
		return "environment"
	case errors.As(err, &ioErr):
		return "io"
	case errors.As(err, &schemaErr):
		return "schema"
	}
	return "error"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
