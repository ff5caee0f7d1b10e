// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Voronova

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avoronova/craft-stash/models"
)

type projectDetailModel struct {
	project models.Project
	matIdx  int
	loading bool
	status  string
}

func (m projectDetailModel) currentMaterial() (models.ProjectMaterial, bool) {
	materials := m.project.Materials
	if len(materials) == 0 || m.matIdx < 0 || m.matIdx >= len(materials) {
		return models.ProjectMaterial{}, false
	}
	return materials[m.matIdx], true
}

// nextStatus returns the status after the current one, wrapping around.
func nextStatus(status models.ProjectStatus) models.ProjectStatus {
	statuses := models.ProjectStatuses()
	for i, s := range statuses {
		if s == status {
			return statuses[(i+1)%len(statuses)]
		}
	}
	return models.StatusPlanned
}

func (m projectDetailModel) View() string {
	if m.loading {
		return renderPage("PROJECT", "Loading...", "esc back")
	}

	p := m.project

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Status:   %s\n", p.Status))
	b.WriteString(fmt.Sprintf("Pattern:  %s\n", orDash(p.PatternName)))
	b.WriteString(fmt.Sprintf("URL:      %s\n", orDash(p.PatternURL)))
	b.WriteString(fmt.Sprintf("Notes:    %s\n", orDash(p.Notes)))
	b.WriteString("\nMaterials:\n")

	if len(p.Materials) == 0 {
		b.WriteString("  none\n")
	} else {
		for i, mat := range p.Materials {
			cursor := "  "
			if i == m.matIdx {
				cursor = "> "
			}
			linked := ""
			if mat.SupplyID != 0 {
				linked = fmt.Sprintf("  (supply #%d)", mat.SupplyID)
			}
			b.WriteString(fmt.Sprintf("%s%-30s %s%s\n",
				cursor, fitText(mat.Name, 30), formatAmount(mat.Quantity, mat.Unit), linked))
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage(p.Name, strings.TrimRight(b.String(), "\n"),
		"e edit  t cycle status  m add material  d delete material  esc back")
}

func (m appModel) updateProjectDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenProjectList
		return m, m.cmdLoadProjects()
	case key.Matches(keyMsg, keys.up):
		if m.projectDetail.matIdx > 0 {
			m.projectDetail.matIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.projectDetail.matIdx < len(m.projectDetail.project.Materials)-1 {
			m.projectDetail.matIdx++
		}
	case key.Matches(keyMsg, keys.edit):
		project := m.projectDetail.project
		m.projectForm = newProjectFormModel(&project)
		m.currentScreen = screenProjectForm
	case key.Matches(keyMsg, keys.status):
		next := nextStatus(m.projectDetail.project.Status)
		return m, m.cmdSetProjectStatus(m.projectDetail.project.ID, next)
	case key.Matches(keyMsg, keys.material):
		m.materialForm = newMaterialFormModel(m.projectDetail.project.ID)
		m.currentScreen = screenMaterialForm
	case key.Matches(keyMsg, keys.delete):
		material, ok := m.projectDetail.currentMaterial()
		if !ok {
			return m, nil
		}
		m.confirm = confirmModel{message: fmt.Sprintf("Remove %q from the project?", material.Name)}
		m.showConfirm = true
		m.pendingAction = actionDeleteMaterial
		m.pendingID = m.projectDetail.project.ID
		m.pendingMaterialID = material.ID
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}
