package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newRegisterModel() registerModel {
	labels := []struct {
		placeholder string
		masked      bool
	}{
		{placeholder: "name"},
		{placeholder: "login"},
		{placeholder: "password", masked: true},
		{placeholder: "repeat password", masked: true},
	}

	inputs := make([]textinput.Model, len(labels))
	for i, l := range labels {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = l.placeholder
		inputs[i].CharLimit = 256
		inputs[i].Width = 40
		if l.masked {
			inputs[i].EchoMode = textinput.EchoPassword
			inputs[i].EchoCharacter = '*'
		}
	}
	inputs[0].Focus()

	return registerModel{inputs: inputs}
}

func (m registerModel) View() string {
	body := "Name:            [" + m.inputs[0].View() + "]\n"
	body += "Login:           [" + m.inputs[1].View() + "]\n"
	body += "Password:        [" + m.inputs[2].View() + "]\n"
	body += "Repeat password: [" + m.inputs[3].View() + "]\n"
	if m.submitting {
		body += "\n[Registering...]"
	} else {
		body += "\n[Register]"
	}
	return renderPage("REGISTER", body, "enter submit  tab next field  esc back")
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register = focusNextRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register = focusPrevRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			name := strings.TrimSpace(m.register.inputs[0].Value())
			login := strings.TrimSpace(m.register.inputs[1].Value())
			pass := m.register.inputs[2].Value()
			repeat := m.register.inputs[3].Value()
			if login == "" || pass == "" {
				m.showErrorf("Login and password are required")
				return m, nil
			}
			if pass != repeat {
				m.showErrorf("Passwords do not match")
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegister(login, name, pass)
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func focusNextRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
