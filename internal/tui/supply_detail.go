package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avoronova/craft-stash/models"
)

type supplyDetailModel struct {
	supply models.Supply
	status string
}

func (m supplyDetailModel) View() string {
	s := m.supply

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Category:     %s\n", s.Category))
	b.WriteString(fmt.Sprintf("Quantity:     %s\n", formatAmount(s.Quantity, s.Unit)))
	if s.MinQuantity > 0 {
		restock := ""
		if s.Quantity < s.MinQuantity {
			restock = "  (below threshold)"
		}
		b.WriteString(fmt.Sprintf("Restock at:   %s%s\n", formatAmount(s.MinQuantity, s.Unit), restock))
	}
	b.WriteString(fmt.Sprintf("Color:        %s\n", orDash(s.Color)))
	b.WriteString(fmt.Sprintf("Brand:        %s\n", orDash(s.Brand)))
	b.WriteString(fmt.Sprintf("Barcode:      %s\n", orDash(s.Barcode)))
	b.WriteString(fmt.Sprintf("Tags:         %s\n", orDash(strings.Join(s.Tags, ", "))))
	b.WriteString(fmt.Sprintf("Notes:        %s\n", orDash(s.Notes)))
	if !s.UpdatedAt.IsZero() {
		b.WriteString(fmt.Sprintf("Updated:      %s\n", s.UpdatedAt.Format("2006-01-02 15:04")))
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage(s.Name, strings.TrimRight(b.String(), "\n"), "e edit  d delete  c copy name  esc back")
}

func (m appModel) updateSupplyDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenSupplyList
	case key.Matches(keyMsg, keys.edit):
		supply := m.supplyDetail.supply
		m.supplyForm = newSupplyFormModel(&supply)
		m.currentScreen = screenSupplyForm
	case key.Matches(keyMsg, keys.delete):
		m.confirm = confirmModel{message: fmt.Sprintf("Delete %q?", m.supplyDetail.supply.Name)}
		m.showConfirm = true
		m.pendingAction = actionDeleteSupply
		m.pendingID = m.supplyDetail.supply.ID
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.supplyDetail.supply.Name)
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}
