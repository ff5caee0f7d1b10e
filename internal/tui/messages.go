package tui

import (
	"github.com/avoronova/craft-stash/models"
)

type authDoneMsg struct {
	token models.Token
}

type authFailedMsg struct {
	err error
}

type suppliesLoadedMsg struct {
	list    models.SupplyList
	offline bool
	err     error
}

type supplySavedMsg struct {
	err error
}

type supplyDeletedMsg struct {
	err error
}

type lookupDoneMsg struct {
	product  models.CatalogProduct
	notFound bool
	err      error
}

type projectsLoadedMsg struct {
	projects []models.Project
	err      error
}

type projectLoadedMsg struct {
	project models.Project
	err     error
}

type projectSavedMsg struct {
	err error
}

type projectDeletedMsg struct {
	err error
}

type materialSavedMsg struct {
	err error
}

type materialDeletedMsg struct {
	err error
}

type shoppingLoadedMsg struct {
	items []models.ShoppingItem
	err   error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
