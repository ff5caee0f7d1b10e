package tui

// confirmModel is a modal yes/no prompt rendered over the current screen.
type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	return overlayBoxStyle.Render(m.message + "\n\ny yes  n no")
}
