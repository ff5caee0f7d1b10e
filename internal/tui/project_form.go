package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avoronova/craft-stash/models"
)

const (
	projectFieldName = iota
	projectFieldPatternName
	projectFieldPatternURL
	projectFieldNotes
	projectFieldCount
)

type projectFormModel struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	projectID  int64
	status     models.ProjectStatus
	submitting bool
}

func newProjectFormModel(project *models.Project) projectFormModel {
	placeholders := [projectFieldCount]string{"name", "pattern name", "pattern url", "notes"}

	inputs := make([]textinput.Model, projectFieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholders[i]
		inputs[i].CharLimit = 256
		inputs[i].Width = 40
	}
	inputs[projectFieldName].Focus()

	m := projectFormModel{inputs: inputs}
	if project == nil {
		return m
	}

	m.editing = true
	m.projectID = project.ID
	m.status = project.Status
	m.inputs[projectFieldName].SetValue(project.Name)
	m.inputs[projectFieldPatternName].SetValue(project.PatternName)
	m.inputs[projectFieldPatternURL].SetValue(project.PatternURL)
	m.inputs[projectFieldNotes].SetValue(project.Notes)
	return m
}

func (m projectFormModel) toProject() models.Project {
	return models.Project{
		ID:          m.projectID,
		Name:        strings.TrimSpace(m.inputs[projectFieldName].Value()),
		Status:      m.status,
		PatternName: strings.TrimSpace(m.inputs[projectFieldPatternName].Value()),
		PatternURL:  strings.TrimSpace(m.inputs[projectFieldPatternURL].Value()),
		Notes:       m.inputs[projectFieldNotes].Value(),
	}
}

func (m projectFormModel) View() string {
	title := "NEW PROJECT"
	if m.editing {
		title = "EDIT PROJECT"
	}

	body := "Name:         [" + m.inputs[projectFieldName].View() + "]\n"
	body += "Pattern name: [" + m.inputs[projectFieldPatternName].View() + "]\n"
	body += "Pattern URL:  [" + m.inputs[projectFieldPatternURL].View() + "]\n"
	body += "Notes:        [" + m.inputs[projectFieldNotes].View() + "]\n"
	if m.submitting {
		body += "\n[Saving...]"
	} else {
		body += "\n[Save]"
	}

	return renderPage(title, body, "enter save  tab next field  esc cancel")
}

func (m appModel) updateProjectForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			if m.projectForm.editing {
				m.currentScreen = screenProjectDetail
			} else {
				m.currentScreen = screenProjectList
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.projectForm = focusNextProjectForm(m.projectForm)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.projectForm = focusPrevProjectForm(m.projectForm)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.projectForm.submitting {
				return m, nil
			}
			project := m.projectForm.toProject()
			if project.Name == "" {
				m.showErrorf("Project name is required")
				return m, nil
			}
			m.projectForm.submitting = true
			if m.projectForm.editing {
				return m, m.cmdUpdateProject(project)
			}
			return m, m.cmdCreateProject(project)
		}
	}

	var cmd tea.Cmd
	m.projectForm.inputs[m.projectForm.focus], cmd = m.projectForm.inputs[m.projectForm.focus].Update(msg)
	return m, cmd
}

func focusNextProjectForm(m projectFormModel) projectFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevProjectForm(m projectFormModel) projectFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
