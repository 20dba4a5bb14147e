package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/pluqqy-cv/pkg/composer"
	"github.com/pluqqy/pluqqy-cv/pkg/models"
)

// Preview renders the document in a scrollable pane.
type Preview struct {
	viewport viewport.Model
	content  string
}

// NewPreview creates an empty preview.
func NewPreview() *Preview {
	return &Preview{viewport: viewport.New(40, 10)}
}

// SetSize sets the size of the pane.
func (p *Preview) SetSize(width, height int) {
	p.viewport.Width = max(width, 10)
	p.viewport.Height = max(height, 3)
}

// Render composes cv with opts and shows it. The scroll position is kept.
func (p *Preview) Render(cv *models.CV, opts composer.Options) {
	opts.Width = max(p.viewport.Width-2, 10)
	out, err := composer.ComposeCV(cv, opts)
	if err != nil {
		out = fmt.Sprintf("Error generating preview: %v", err)
	}
	// Add padding to preview content
	p.content = lipgloss.NewStyle().PaddingLeft(1).Render(out)
	p.viewport.SetContent(p.content)
}

// Content returns the rendered document.
func (p *Preview) Content() string { return p.content }

// Update scrolls the pane.
func (p *Preview) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

// View renders the visible part of the document.
func (p *Preview) View() string {
	return p.viewport.View()
}
