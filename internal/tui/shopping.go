package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avoronova/craft-stash/models"
)

// shoppingModel renders the computed shopping list. The list is never stored;
// every visit recomputes it from inventory and project requirements.
type shoppingModel struct {
	items   []models.ShoppingItem
	loading bool
	status  string
}

func newShoppingModel() shoppingModel {
	return shoppingModel{loading: true}
}

// plainText renders the list as copy-friendly lines, one item per line.
func (m shoppingModel) plainText() string {
	var b strings.Builder
	for _, item := range m.items {
		b.WriteString(fmt.Sprintf("%s %s (%s)\n",
			formatAmount(item.Needed, item.Unit), item.Name, strings.Join(item.Reasons, ", ")))
	}
	return b.String()
}

func (m shoppingModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Computing...\n")
	} else if len(m.items) == 0 {
		b.WriteString("Nothing to buy. Everything is stocked.\n")
	} else {
		for _, item := range m.items {
			b.WriteString(fmt.Sprintf("%-30s %12s   %s\n",
				fitText(item.Name, 30),
				formatAmount(item.Needed, item.Unit),
				strings.Join(item.Reasons, ", ")))
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage("SHOPPING LIST", strings.TrimRight(b.String(), "\n"), "c copy  r refresh  esc inventory  q quit")
}

func (m appModel) updateShopping(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenSupplyList
	case key.Matches(keyMsg, keys.copy):
		if len(m.shopping.items) == 0 {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.shopping.plainText())
	case key.Matches(keyMsg, keys.refresh):
		m.shopping.loading = true
		return m, m.cmdLoadShoppingList()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}
