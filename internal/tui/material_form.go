package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avoronova/craft-stash/models"
)

const (
	materialFieldName = iota
	materialFieldQuantity
	materialFieldUnit
	materialFieldSupplyID
	materialFieldCount
)

type materialFormModel struct {
	inputs     []textinput.Model
	focus      int
	projectID  int64
	submitting bool
}

func newMaterialFormModel(projectID int64) materialFormModel {
	placeholders := [materialFieldCount]string{
		"material name",
		"0",
		"g / m / pcs / skein / ...",
		"optional inventory supply id",
	}

	inputs := make([]textinput.Model, materialFieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholders[i]
		inputs[i].CharLimit = 128
		inputs[i].Width = 40
	}
	inputs[materialFieldName].Focus()

	return materialFormModel{inputs: inputs, projectID: projectID}
}

func (m materialFormModel) toMaterial() (models.ProjectMaterial, string) {
	quantity, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[materialFieldQuantity].Value()), 64)
	if err != nil {
		return models.ProjectMaterial{}, "Quantity must be a number"
	}

	var supplyID int64
	if raw := strings.TrimSpace(m.inputs[materialFieldSupplyID].Value()); raw != "" {
		supplyID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return models.ProjectMaterial{}, "Supply id must be a whole number"
		}
	}

	return models.ProjectMaterial{
		ProjectID: m.projectID,
		SupplyID:  supplyID,
		Name:      strings.TrimSpace(m.inputs[materialFieldName].Value()),
		Quantity:  quantity,
		Unit:      strings.TrimSpace(m.inputs[materialFieldUnit].Value()),
	}, ""
}

func (m materialFormModel) View() string {
	body := "Name:      [" + m.inputs[materialFieldName].View() + "]\n"
	body += "Quantity:  [" + m.inputs[materialFieldQuantity].View() + "]\n"
	body += "Unit:      [" + m.inputs[materialFieldUnit].View() + "]\n"
	body += "Supply id: [" + m.inputs[materialFieldSupplyID].View() + "]\n"
	if m.submitting {
		body += "\n[Saving...]"
	} else {
		body += "\n[Save]"
	}

	return renderPage("ADD MATERIAL", body, "enter save  tab next field  esc cancel")
}

func (m appModel) updateMaterialForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenProjectDetail
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.materialForm = focusNextMaterialForm(m.materialForm)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.materialForm = focusPrevMaterialForm(m.materialForm)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.materialForm.submitting {
				return m, nil
			}
			material, errMsg := m.materialForm.toMaterial()
			if errMsg != "" {
				m.showErrorf("%s", errMsg)
				return m, nil
			}
			if material.Name == "" || material.Unit == "" {
				m.showErrorf("Name and unit are required")
				return m, nil
			}
			if material.Quantity <= 0 {
				m.showErrorf("Quantity must be above zero")
				return m, nil
			}
			m.materialForm.submitting = true
			return m, m.cmdAddMaterial(material)
		}
	}

	var cmd tea.Cmd
	m.materialForm.inputs[m.materialForm.focus], cmd = m.materialForm.inputs[m.materialForm.focus].Update(msg)
	return m, cmd
}

func focusNextMaterialForm(m materialFormModel) materialFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevMaterialForm(m materialFormModel) materialFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
