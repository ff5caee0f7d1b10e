package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avoronova/craft-stash/models"
)

// filterModel is the sort and filter dialog of the inventory screen. It edits
// a copy of the list query; enter applies, esc discards.
type filterModel struct {
	query models.SupplyQuery
	idx   int
	rows  []filterRow
}

type filterRow struct {
	label    string
	category string // non-empty for category toggle rows
	sortBy   string // non-empty for sort column rows
	sortDir  string // non-empty for direction rows
}

func newFilterModel(query models.SupplyQuery) filterModel {
	rows := []filterRow{
		{label: "Sort by name", sortBy: models.SortByName},
		{label: "Sort by quantity", sortBy: models.SortByQuantity},
		{label: "Sort by last updated", sortBy: models.SortByUpdated},
		{label: "Ascending", sortDir: models.SortAsc},
		{label: "Descending", sortDir: models.SortDesc},
	}
	for _, category := range models.Categories() {
		rows = append(rows, filterRow{label: "Category: " + category, category: category})
	}
	return filterModel{query: query, rows: rows}
}

func (m filterModel) hasCategory(category string) bool {
	for _, c := range m.query.Categories {
		if c == category {
			return true
		}
	}
	return false
}

func (m *filterModel) toggle() {
	row := m.rows[m.idx]
	switch {
	case row.sortBy != "":
		m.query.SortBy = row.sortBy
	case row.sortDir != "":
		m.query.SortDir = row.sortDir
	case row.category != "":
		if m.hasCategory(row.category) {
			kept := m.query.Categories[:0]
			for _, c := range m.query.Categories {
				if c != row.category {
					kept = append(kept, c)
				}
			}
			m.query.Categories = kept
		} else {
			m.query.Categories = append(m.query.Categories, row.category)
		}
	}
}

func (m filterModel) marker(row filterRow) string {
	selected := false
	switch {
	case row.sortBy != "":
		selected = m.query.SortBy == row.sortBy
	case row.sortDir != "":
		selected = m.query.SortDir == row.sortDir
	case row.category != "":
		selected = m.hasCategory(row.category)
	}
	if selected {
		return "[x]"
	}
	return "[ ]"
}

func (m filterModel) View() string {
	var b strings.Builder
	for i, row := range m.rows {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, m.marker(row), row.label))
	}
	return renderPage("SORT & FILTER", strings.TrimRight(b.String(), "\n"), "space toggle  enter apply  esc cancel")
}

func (m appModel) updateFilter(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.filter.idx > 0 {
			m.filter.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.filter.idx < len(m.filter.rows)-1 {
			m.filter.idx++
		}
	case key.Matches(keyMsg, keys.space):
		m.filter.toggle()
	case key.Matches(keyMsg, keys.enter):
		m.supplyList.query = m.filter.query
		m.supplyList.query.Page = 0
		m.supplyList.loading = true
		m.currentScreen = screenSupplyList
		return m, m.cmdLoadSupplies()
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenSupplyList
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}
