package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	statusYes = "Yes"
	statusNo  = "No"
)

type DoctorRenderer struct {
	theme *Theme
}

func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

// DoctorReport describes how the desktop color scheme was resolved.
type DoctorReport struct {
	// Forced is the configured override, empty when detection runs.
	Forced string
	// Source names the detector that answered, or "fallback".
	Source string
	// PrefersDark is the resolved preference.
	PrefersDark bool
	Detectors   []DoctorDetector
}

// DoctorDetector is the state of one detector, in priority order.
type DoctorDetector struct {
	Name        string
	Priority    int
	Available   bool
	Detected    bool
	PrefersDark bool
}

func (r *DoctorRenderer) Render(report DoctorReport) string {
	header := r.renderHeader(report)
	return lipgloss.JoinVertical(lipgloss.Left, header, "", r.renderDetectors(report.Detectors))
}

func (r *DoctorRenderer) renderHeader(report DoctorReport) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	scheme := "light"
	if report.PrefersDark {
		scheme = "dark"
	}

	title := fmt.Sprintf("%s %s", iconStyle.Render(IconDoctor), r.theme.Title.Render("Doctor"))
	badge := r.theme.Badge.Render(fmt.Sprintf("%s %s", ModeIcon(scheme), scheme))
	via := r.theme.Subtle.Render("via " + report.Source)
	if report.Forced != "" {
		via = r.theme.WarningStyle.Render(fmt.Sprintf("forced by config (%s)", report.Forced))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge, " ", via)
}

func (r *DoctorRenderer) renderDetectors(detectors []DoctorDetector) string {
	lines := make([]string, 0, len(detectors))
	for _, d := range detectors {
		lines = append(lines, r.renderDetector(d))
	}
	if len(lines) == 0 {
		lines = append(lines, r.theme.Subtle.Render("No detectors registered"))
	}

	body := strings.Join(lines, "\n")
	return r.theme.Box.Render(r.theme.BoxHeader.Render(fmt.Sprintf("%s Detectors", r.theme.Highlight.Render(IconDesktop))) + "\n" + body)
}

func (r *DoctorRenderer) renderDetector(d DoctorDetector) string {
	icon := IconCheck
	statusStyle := r.theme.SuccessStyle
	status := "dark"
	if !d.PrefersDark {
		status = "light"
	}

	switch {
	case !d.Available:
		icon = IconX
		statusStyle = r.theme.Subtle
		status = "unavailable"
	case !d.Detected:
		icon = IconWarning
		statusStyle = r.theme.WarningStyle
		status = "no answer"
	}

	available := statusNo
	if d.Available {
		available = statusYes
	}

	return fmt.Sprintf("%s %-10s %s %s %s",
		statusStyle.Render(icon),
		r.theme.Normal.Render(d.Name),
		r.theme.Subtle.Render(fmt.Sprintf("prio %3d", d.Priority)),
		r.theme.Subtle.Render("available "+available),
		statusStyle.Render(status),
	)
}
