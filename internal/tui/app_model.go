// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Voronova

package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avoronova/craft-stash/internal/service"
	"github.com/avoronova/craft-stash/models"
)

// ErrUserQuit reports that the user closed the program instead of finishing
// the flow.
var ErrUserQuit = errors.New("user quit")

// screen identifies which page of the application is active.
type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenSupplyList
	screenSupplyDetail
	screenSupplyForm
	screenLookup
	screenFilter
	screenProjectList
	screenProjectDetail
	screenProjectForm
	screenMaterialForm
	screenShopping
)

// pendingAction is the destructive operation awaiting yes/no confirmation.
type pendingAction int

const (
	actionNone pendingAction = iota
	actionLogout
	actionDeleteSupply
	actionDeleteProject
	actionDeleteMaterial
)

// appModel is the single bubbletea model for the whole application. Each
// screen keeps its own state in a sub-model; appModel routes messages to the
// active screen and owns the confirm and error overlays shown on top of it.
type appModel struct {
	ctx      context.Context
	services *service.ClientServices

	currentScreen screen

	welcome       welcomeModel
	login         loginModel
	register      registerModel
	supplyList    supplyListModel
	supplyDetail  supplyDetailModel
	supplyForm    supplyFormModel
	lookup        lookupModel
	filter        filterModel
	projectList   projectListModel
	projectDetail projectDetailModel
	projectForm   projectFormModel
	materialForm  materialFormModel
	shopping      shoppingModel

	confirm           confirmModel
	showConfirm       bool
	pendingAction     pendingAction
	pendingID         int64
	pendingMaterialID int64

	errorOverlay errorOverlayModel
	showError    bool

	// token is filled by the login flow and read back by the caller after
	// the program exits.
	token models.Token

	// logout is set when the user confirms logging out of the main loop.
	logout bool

	err error
}

// newLoginAppModel builds the model for the pre-auth flow: welcome, login,
// and register screens.
func newLoginAppModel(ctx context.Context, services *service.ClientServices) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
	}
}

// newMainAppModel builds the model for the authenticated session, starting at
// the inventory screen.
func newMainAppModel(ctx context.Context, services *service.ClientServices) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		currentScreen: screenSupplyList,
		supplyList:    newSupplyListModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	if m.currentScreen == screenSupplyList {
		return m.cmdLoadSupplies()
	}
	return nil
}

// showErrorf raises the error overlay with a formatted message. The overlay
// swallows input until dismissed.
func (m *appModel) showErrorf(format string, args ...any) {
	m.errorOverlay = errorOverlayModel{message: fmt.Sprintf(format, args...)}
	m.showError = true
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
		if m.showError {
			return m.updateErrorOverlay(keyMsg)
		}
		if m.showConfirm {
			return m.updateConfirm(keyMsg)
		}
	}

	if model, cmd, handled := m.handleMessage(msg); handled {
		return model, cmd
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenSupplyList:
		return m.updateSupplyList(msg)
	case screenSupplyDetail:
		return m.updateSupplyDetail(msg)
	case screenSupplyForm:
		return m.updateSupplyForm(msg)
	case screenLookup:
		return m.updateLookup(msg)
	case screenFilter:
		return m.updateFilter(msg)
	case screenProjectList:
		return m.updateProjectList(msg)
	case screenProjectDetail:
		return m.updateProjectDetail(msg)
	case screenProjectForm:
		return m.updateProjectForm(msg)
	case screenMaterialForm:
		return m.updateMaterialForm(msg)
	case screenShopping:
		return m.updateShopping(msg)
	}

	return m, nil
}

func (m appModel) updateErrorOverlay(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
		m.showError = false
		m.errorOverlay.message = ""
	}
	return m, nil
}

func (m appModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		m.showConfirm = false
		action := m.pendingAction
		m.pendingAction = actionNone

		switch action {
		case actionLogout:
			m.logout = true
			return m, tea.Quit
		case actionDeleteSupply:
			return m, m.cmdDeleteSupply(m.pendingID)
		case actionDeleteProject:
			return m, m.cmdDeleteProject(m.pendingID)
		case actionDeleteMaterial:
			return m, m.cmdDeleteMaterial(m.pendingID, m.pendingMaterialID)
		}
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.showConfirm = false
		m.pendingAction = actionNone
	}
	return m, nil
}

// handleMessage consumes the typed messages produced by commands. Returns
// handled=false for anything else so the active screen gets a chance.
func (m appModel) handleMessage(msg tea.Msg) (tea.Model, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case authDoneMsg:
		m.token = msg.token
		return m, tea.Quit, true

	case authFailedMsg:
		m.login.submitting = false
		m.register.submitting = false
		m.showErrorf("%v", msg.err)
		return m, nil, true

	case suppliesLoadedMsg:
		m.supplyList.loading = false
		if msg.err != nil {
			m.showErrorf("Failed to load supplies: %v", msg.err)
			return m, nil, true
		}
		m.supplyList.list = msg.list
		m.supplyList.offline = msg.offline
		if m.supplyList.idx >= len(msg.list.Items) {
			m.supplyList.idx = len(msg.list.Items) - 1
		}
		if m.supplyList.idx < 0 {
			m.supplyList.idx = 0
		}
		return m, nil, true

	case supplySavedMsg:
		m.supplyForm.submitting = false
		if msg.err != nil {
			m.showErrorf("Failed to save supply: %v", msg.err)
			return m, nil, true
		}
		m.currentScreen = screenSupplyList
		m.supplyList.loading = true
		m.supplyList.status = "Saved"
		return m, tea.Batch(m.cmdLoadSupplies(), cmdClearStatus()), true

	case supplyDeletedMsg:
		if msg.err != nil {
			m.showErrorf("Failed to delete supply: %v", msg.err)
			return m, nil, true
		}
		m.currentScreen = screenSupplyList
		m.supplyList.loading = true
		m.supplyList.status = "Deleted"
		return m, tea.Batch(m.cmdLoadSupplies(), cmdClearStatus()), true

	case lookupDoneMsg:
		m.lookup.submitting = false
		if msg.notFound {
			m.lookup.notFound = true
			return m, nil, true
		}
		if msg.err != nil {
			m.showErrorf("Lookup failed: %v", msg.err)
			return m, nil, true
		}
		m.supplyForm = newSupplyFormFromCatalog(msg.product)
		m.currentScreen = screenSupplyForm
		return m, nil, true

	case projectsLoadedMsg:
		m.projectList.loading = false
		if msg.err != nil {
			m.showErrorf("Failed to load projects: %v", msg.err)
			return m, nil, true
		}
		m.projectList.projects = msg.projects
		if m.projectList.idx >= len(msg.projects) {
			m.projectList.idx = len(msg.projects) - 1
		}
		if m.projectList.idx < 0 {
			m.projectList.idx = 0
		}
		return m, nil, true

	case projectLoadedMsg:
		m.projectDetail.loading = false
		if msg.err != nil {
			m.showErrorf("Failed to load project: %v", msg.err)
			m.currentScreen = screenProjectList
			return m, nil, true
		}
		m.projectDetail.project = msg.project
		if m.projectDetail.matIdx >= len(msg.project.Materials) {
			m.projectDetail.matIdx = len(msg.project.Materials) - 1
		}
		if m.projectDetail.matIdx < 0 {
			m.projectDetail.matIdx = 0
		}
		m.currentScreen = screenProjectDetail
		return m, nil, true

	case projectSavedMsg:
		m.projectForm.submitting = false
		if msg.err != nil {
			m.showErrorf("Failed to save project: %v", msg.err)
			return m, nil, true
		}
		if m.projectForm.editing {
			m.projectDetail.loading = true
			return m, m.cmdLoadProject(m.projectForm.projectID), true
		}
		m.currentScreen = screenProjectList
		m.projectList.loading = true
		return m, m.cmdLoadProjects(), true

	case projectDeletedMsg:
		if msg.err != nil {
			m.showErrorf("Failed to delete project: %v", msg.err)
			return m, nil, true
		}
		m.currentScreen = screenProjectList
		m.projectList.loading = true
		m.projectList.status = "Deleted"
		return m, tea.Batch(m.cmdLoadProjects(), cmdClearStatus()), true

	case materialSavedMsg:
		m.materialForm.submitting = false
		if msg.err != nil {
			m.showErrorf("Failed to add material: %v", msg.err)
			return m, nil, true
		}
		m.projectDetail.loading = true
		return m, m.cmdLoadProject(m.materialForm.projectID), true

	case materialDeletedMsg:
		if msg.err != nil {
			m.showErrorf("Failed to remove material: %v", msg.err)
			return m, nil, true
		}
		m.projectDetail.loading = true
		return m, m.cmdLoadProject(m.projectDetail.project.ID), true

	case shoppingLoadedMsg:
		m.shopping.loading = false
		if msg.err != nil {
			m.showErrorf("Failed to compute shopping list: %v", msg.err)
			return m, nil, true
		}
		m.shopping.items = msg.items
		return m, nil, true

	case copiedMsg:
		switch m.currentScreen {
		case screenSupplyDetail:
			m.supplyDetail.status = "Copied to clipboard"
		case screenShopping:
			m.shopping.status = "Copied to clipboard"
		}
		return m, cmdClearStatus(), true

	case clearStatusMsg:
		m.supplyList.status = ""
		m.supplyDetail.status = ""
		m.projectList.status = ""
		m.projectDetail.status = ""
		m.shopping.status = ""
		return m, nil, true
	}

	return m, nil, false
}

func (m appModel) View() string {
	var page string

	switch m.currentScreen {
	case screenWelcome:
		page = m.welcome.View()
	case screenLogin:
		page = m.login.View()
	case screenRegister:
		page = m.register.View()
	case screenSupplyList:
		page = m.supplyList.View()
	case screenSupplyDetail:
		page = m.supplyDetail.View()
	case screenSupplyForm:
		page = m.supplyForm.View()
	case screenLookup:
		page = m.lookup.View()
	case screenFilter:
		page = m.filter.View()
	case screenProjectList:
		page = m.projectList.View()
	case screenProjectDetail:
		page = m.projectDetail.View()
	case screenProjectForm:
		page = m.projectForm.View()
	case screenMaterialForm:
		page = m.materialForm.View()
	case screenShopping:
		page = m.shopping.View()
	}

	if m.showError {
		page += "\n" + m.errorOverlay.View()
	} else if m.showConfirm {
		page += "\n" + m.confirm.View()
	}

	return appStyle.Render(page)
}
