package tui

// errorOverlayModel is a modal message box shown until the user dismisses it.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	return overlayBoxStyle.Render(m.message + "\n\nenter dismiss")
}
