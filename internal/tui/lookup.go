package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// lookupModel is the add-via-barcode screen. A found product prefills the
// supply form; a miss offers to switch to manual entry.
type lookupModel struct {
	input      textinput.Model
	submitting bool
	notFound   bool
}

func newLookupModel() lookupModel {
	input := textinput.New()
	input.Placeholder = "barcode"
	input.CharLimit = 64
	input.Width = 30
	input.Focus()
	return lookupModel{input: input}
}

func (m lookupModel) View() string {
	var b strings.Builder
	b.WriteString("Barcode: [" + m.input.View() + "]\n")
	if m.submitting {
		b.WriteString("\nLooking up...")
	}
	if m.notFound {
		b.WriteString("\nNot found in the catalog. Switch to manual add?")
	}

	hotKeys := "enter look up  esc back"
	if m.notFound {
		hotKeys = "m manual add  enter retry  esc back"
	}
	return renderPage("ADD BY BARCODE", b.String(), hotKeys)
}

func (m appModel) updateLookup(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenSupplyList
			return m, nil
		case m.lookup.notFound && key.Matches(keyMsg, keys.material):
			// "m" switches to the manual add form, keeping the barcode
			m.supplyForm = newSupplyFormModel(nil)
			m.supplyForm.barcode = strings.TrimSpace(m.lookup.input.Value())
			m.currentScreen = screenSupplyForm
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.lookup.submitting {
				return m, nil
			}
			barcode := strings.TrimSpace(m.lookup.input.Value())
			if barcode == "" {
				m.showErrorf("Barcode is required")
				return m, nil
			}
			m.lookup.submitting = true
			m.lookup.notFound = false
			return m, m.cmdLookupBarcode(barcode)
		}
	}

	var cmd tea.Cmd
	m.lookup.input, cmd = m.lookup.input.Update(msg)
	return m, cmd
}
