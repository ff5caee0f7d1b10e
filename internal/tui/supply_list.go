// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Voronova

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avoronova/craft-stash/models"
)

// supplyListModel is the inventory screen: one page of supplies with search,
// filters, and pagination driven by a models.SupplyQuery.
type supplyListModel struct {
	query models.SupplyQuery
	list  models.SupplyList
	idx   int

	searchInput textinput.Model
	searching   bool

	loading bool
	offline bool
	status  string
}

func newSupplyListModel() supplyListModel {
	search := textinput.New()
	search.Placeholder = "search"
	search.CharLimit = 64
	search.Width = 30

	query := models.SupplyQuery{}
	query.Normalize()

	return supplyListModel{
		query:       query,
		searchInput: search,
		loading:     true,
	}
}

func (m supplyListModel) current() (models.Supply, bool) {
	if len(m.list.Items) == 0 || m.idx < 0 || m.idx >= len(m.list.Items) {
		return models.Supply{}, false
	}
	return m.list.Items[m.idx], true
}

func (m supplyListModel) totalPages() int {
	if m.list.PageSize <= 0 {
		return 1
	}
	pages := (m.list.Total + m.list.PageSize - 1) / m.list.PageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

func (m supplyListModel) View() string {
	title := "INVENTORY"
	if m.offline {
		title += "  " + offlineStyle.Render("[offline]")
	}

	var b strings.Builder

	if m.searching {
		b.WriteString("Search: [" + m.searchInput.View() + "]\n\n")
	} else if m.query.Q != "" {
		b.WriteString("Search: " + m.query.Q + "  (/ to change, esc to clear)\n\n")
	}
	if len(m.query.Categories) > 0 {
		b.WriteString("Filter: " + strings.Join(m.query.Categories, ", ") + "\n\n")
	}

	if m.loading {
		b.WriteString("Loading...\n")
	} else if len(m.list.Items) == 0 {
		b.WriteString("No supplies found\n")
	} else {
		for i, s := range m.list.Items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			low := ""
			if s.MinQuantity > 0 && s.Quantity < s.MinQuantity {
				low = "  LOW"
			}
			b.WriteString(fmt.Sprintf("%s%-30s %10s  %-8s%s\n",
				cursor, fitText(s.Name, 30), formatQuantity(s.Quantity), s.Unit, low))
		}
		b.WriteString(fmt.Sprintf("\nPage %d/%d  (%d total, sort: %s %s)\n",
			m.list.Page+1, m.totalPages(), m.list.Total, m.query.SortBy, m.query.SortDir))
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	hotKeys := "enter open  n new  b barcode  / search  f filter  left/right page  p projects  s shopping  r refresh  L logout  q quit"
	if m.searching {
		hotKeys = "enter apply  esc cancel"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m appModel) updateSupplyList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	// search entry grabs all keys until applied or cancelled
	if m.supplyList.searching {
		switch {
		case key.Matches(keyMsg, keys.enter):
			m.supplyList.searching = false
			m.supplyList.searchInput.Blur()
			m.supplyList.query.Q = strings.TrimSpace(m.supplyList.searchInput.Value())
			m.supplyList.query.Page = 0
			m.supplyList.loading = true
			return m, m.cmdLoadSupplies()
		case key.Matches(keyMsg, keys.esc):
			m.supplyList.searching = false
			m.supplyList.searchInput.Blur()
			m.supplyList.searchInput.SetValue(m.supplyList.query.Q)
			return m, nil
		}
		var cmd tea.Cmd
		m.supplyList.searchInput, cmd = m.supplyList.searchInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.supplyList.idx > 0 {
			m.supplyList.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.supplyList.idx < len(m.supplyList.list.Items)-1 {
			m.supplyList.idx++
		}
	case key.Matches(keyMsg, keys.left):
		if m.supplyList.query.Page > 0 {
			m.supplyList.query.Page--
			m.supplyList.loading = true
			return m, m.cmdLoadSupplies()
		}
	case key.Matches(keyMsg, keys.right):
		if m.supplyList.query.Page < m.supplyList.totalPages()-1 {
			m.supplyList.query.Page++
			m.supplyList.loading = true
			return m, m.cmdLoadSupplies()
		}
	case key.Matches(keyMsg, keys.enter):
		supply, ok := m.supplyList.current()
		if !ok {
			return m, nil
		}
		m.supplyDetail = supplyDetailModel{supply: supply}
		m.currentScreen = screenSupplyDetail
	case key.Matches(keyMsg, keys.newItem):
		m.supplyForm = newSupplyFormModel(nil)
		m.currentScreen = screenSupplyForm
	case key.Matches(keyMsg, keys.lookup):
		m.lookup = newLookupModel()
		m.currentScreen = screenLookup
	case key.Matches(keyMsg, keys.search):
		m.supplyList.searching = true
		m.supplyList.searchInput.SetValue(m.supplyList.query.Q)
		m.supplyList.searchInput.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.esc):
		if m.supplyList.query.Q != "" {
			m.supplyList.query.Q = ""
			m.supplyList.query.Page = 0
			m.supplyList.searchInput.SetValue("")
			m.supplyList.loading = true
			return m, m.cmdLoadSupplies()
		}
	case key.Matches(keyMsg, keys.filter):
		m.filter = newFilterModel(m.supplyList.query)
		m.currentScreen = screenFilter
	case key.Matches(keyMsg, keys.refresh):
		m.supplyList.loading = true
		return m, m.cmdLoadSupplies()
	case key.Matches(keyMsg, keys.projects):
		m.projectList = newProjectListModel()
		m.currentScreen = screenProjectList
		return m, m.cmdLoadProjects()
	case key.Matches(keyMsg, keys.shopping):
		m.shopping = newShoppingModel()
		m.currentScreen = screenShopping
		return m, m.cmdLoadShoppingList()
	case key.Matches(keyMsg, keys.logout):
		m.confirm = confirmModel{message: "Log out?"}
		m.showConfirm = true
		m.pendingAction = actionLogout
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}
