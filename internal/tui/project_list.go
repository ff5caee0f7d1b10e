package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avoronova/craft-stash/models"
)

type projectListModel struct {
	projects []models.Project
	idx      int
	loading  bool
	status   string
}

func newProjectListModel() projectListModel {
	return projectListModel{loading: true}
}

func (m projectListModel) current() (models.Project, bool) {
	if len(m.projects) == 0 || m.idx < 0 || m.idx >= len(m.projects) {
		return models.Project{}, false
	}
	return m.projects[m.idx], true
}

func statusBadge(status models.ProjectStatus) string {
	switch status {
	case models.StatusPlanned:
		return "[planned] "
	case models.StatusActive:
		return "[active]  "
	case models.StatusFinished:
		return "[finished]"
	default:
		return "[?]       "
	}
}

func (m projectListModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Loading...\n")
	} else if len(m.projects) == 0 {
		b.WriteString("No projects yet\n")
	} else {
		for i, p := range m.projects {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, statusBadge(p.Status), fitText(p.Name, 40)))
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage("PROJECTS", strings.TrimRight(b.String(), "\n"), "enter open  n new  d delete  esc inventory  q quit")
}

func (m appModel) updateProjectList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.projectList.idx > 0 {
			m.projectList.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.projectList.idx < len(m.projectList.projects)-1 {
			m.projectList.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		project, ok := m.projectList.current()
		if !ok {
			return m, nil
		}
		m.projectDetail = projectDetailModel{loading: true}
		m.currentScreen = screenProjectDetail
		return m, m.cmdLoadProject(project.ID)
	case key.Matches(keyMsg, keys.newItem):
		m.projectForm = newProjectFormModel(nil)
		m.currentScreen = screenProjectForm
	case key.Matches(keyMsg, keys.delete):
		project, ok := m.projectList.current()
		if !ok {
			return m, nil
		}
		m.confirm = confirmModel{message: fmt.Sprintf("Delete %q and its materials?", project.Name)}
		m.showConfirm = true
		m.pendingAction = actionDeleteProject
		m.pendingID = project.ID
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenSupplyList
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}
