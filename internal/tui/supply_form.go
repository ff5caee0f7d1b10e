package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avoronova/craft-stash/models"
)

// Supply form input indexes.
const (
	supplyFieldName = iota
	supplyFieldCategory
	supplyFieldQuantity
	supplyFieldUnit
	supplyFieldColor
	supplyFieldBrand
	supplyFieldTags
	supplyFieldNotes
	supplyFieldMinQuantity
	supplyFieldCount
)

type supplyFormModel struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	supplyID   int64
	barcode    string
	submitting bool
}

func newSupplyFormModel(supply *models.Supply) supplyFormModel {
	placeholders := [supplyFieldCount]string{
		"name",
		"Yarn / Fabric / Tool / Notion / Other",
		"0",
		"g / m / pcs / skein / ...",
		"color",
		"brand",
		"comma, separated, tags",
		"notes",
		"0 disables restocking",
	}

	inputs := make([]textinput.Model, supplyFieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholders[i]
		inputs[i].CharLimit = 256
		inputs[i].Width = 40
	}
	inputs[supplyFieldName].Focus()

	m := supplyFormModel{inputs: inputs}
	if supply == nil {
		return m
	}

	m.editing = true
	m.supplyID = supply.ID
	m.barcode = supply.Barcode
	m.inputs[supplyFieldName].SetValue(supply.Name)
	m.inputs[supplyFieldCategory].SetValue(supply.Category)
	m.inputs[supplyFieldQuantity].SetValue(formatQuantity(supply.Quantity))
	m.inputs[supplyFieldUnit].SetValue(supply.Unit)
	m.inputs[supplyFieldColor].SetValue(supply.Color)
	m.inputs[supplyFieldBrand].SetValue(supply.Brand)
	m.inputs[supplyFieldTags].SetValue(strings.Join(supply.Tags, ", "))
	m.inputs[supplyFieldNotes].SetValue(supply.Notes)
	if supply.MinQuantity > 0 {
		m.inputs[supplyFieldMinQuantity].SetValue(formatQuantity(supply.MinQuantity))
	}
	return m
}

// newSupplyFormFromCatalog prefills an add form from a barcode lookup result.
// Every field stays editable before saving.
func newSupplyFormFromCatalog(product models.CatalogProduct) supplyFormModel {
	m := newSupplyFormModel(nil)
	m.barcode = product.Barcode
	m.inputs[supplyFieldName].SetValue(product.Name)
	m.inputs[supplyFieldCategory].SetValue(product.Category)
	if product.DefaultQuantity > 0 {
		m.inputs[supplyFieldQuantity].SetValue(formatQuantity(product.DefaultQuantity))
	}
	m.inputs[supplyFieldUnit].SetValue(product.Unit)
	m.inputs[supplyFieldColor].SetValue(product.Color)
	m.inputs[supplyFieldBrand].SetValue(product.Brand)
	return m
}

// toSupply assembles a models.Supply from the form fields. Quantity fields
// that fail to parse return an error string for the overlay.
func (m supplyFormModel) toSupply() (models.Supply, string) {
	quantity, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[supplyFieldQuantity].Value()), 64)
	if err != nil {
		return models.Supply{}, "Quantity must be a number"
	}

	minQuantity := 0.0
	if raw := strings.TrimSpace(m.inputs[supplyFieldMinQuantity].Value()); raw != "" {
		minQuantity, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.Supply{}, "Restock threshold must be a number"
		}
	}

	var tags []string
	for _, tag := range strings.Split(m.inputs[supplyFieldTags].Value(), ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	return models.Supply{
		ID:          m.supplyID,
		Name:        strings.TrimSpace(m.inputs[supplyFieldName].Value()),
		Category:    strings.TrimSpace(m.inputs[supplyFieldCategory].Value()),
		Quantity:    quantity,
		Unit:        strings.TrimSpace(m.inputs[supplyFieldUnit].Value()),
		Color:       strings.TrimSpace(m.inputs[supplyFieldColor].Value()),
		Brand:       strings.TrimSpace(m.inputs[supplyFieldBrand].Value()),
		Barcode:     m.barcode,
		Tags:        tags,
		Notes:       m.inputs[supplyFieldNotes].Value(),
		MinQuantity: minQuantity,
	}, ""
}

func (m supplyFormModel) View() string {
	title := "NEW SUPPLY"
	if m.editing {
		title = "EDIT SUPPLY"
	}

	labels := [supplyFieldCount]string{
		"Name:       ",
		"Category:   ",
		"Quantity:   ",
		"Unit:       ",
		"Color:      ",
		"Brand:      ",
		"Tags:       ",
		"Notes:      ",
		"Restock at: ",
	}

	var b strings.Builder
	if m.barcode != "" {
		b.WriteString("Barcode: " + m.barcode + "\n\n")
	}
	for i, input := range m.inputs {
		b.WriteString(labels[i] + "[" + input.View() + "]\n")
	}
	if m.submitting {
		b.WriteString("\n[Saving...]")
	} else {
		b.WriteString("\n[Save]")
	}

	return renderPage(title, b.String(), "enter save  tab next field  esc cancel")
}

func (m appModel) updateSupplyForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			if m.supplyForm.editing {
				m.currentScreen = screenSupplyDetail
			} else {
				m.currentScreen = screenSupplyList
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.supplyForm = focusNextSupplyForm(m.supplyForm)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.supplyForm = focusPrevSupplyForm(m.supplyForm)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.supplyForm.submitting {
				return m, nil
			}
			supply, errMsg := m.supplyForm.toSupply()
			if errMsg != "" {
				m.showErrorf("%s", errMsg)
				return m, nil
			}
			if supply.Name == "" || supply.Category == "" || supply.Unit == "" {
				m.showErrorf("Name, category, and unit are required")
				return m, nil
			}
			m.supplyForm.submitting = true
			if m.supplyForm.editing {
				return m, m.cmdUpdateSupply(supply)
			}
			return m, m.cmdCreateSupply(supply)
		}
	}

	var cmd tea.Cmd
	m.supplyForm.inputs[m.supplyForm.focus], cmd = m.supplyForm.inputs[m.supplyForm.focus].Update(msg)
	return m, cmd
}

func focusNextSupplyForm(m supplyFormModel) supplyFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevSupplyForm(m supplyFormModel) supplyFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
