package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avoronova/craft-stash/internal/adapter"
	"github.com/avoronova/craft-stash/models"
)

func (m appModel) cmdLogin(login, password string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AuthService
	return func() tea.Msg {
		token, err := svc.Login(ctx, login, password)
		if err != nil {
			return authFailedMsg{err: err}
		}
		return authDoneMsg{token: token}
	}
}

func (m appModel) cmdRegister(login, name, password string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AuthService
	return func() tea.Msg {
		token, err := svc.Register(ctx, login, name, password)
		if err != nil {
			return authFailedMsg{err: err}
		}
		return authDoneMsg{token: token}
	}
}

// cmdLoadSupplies fetches the current inventory page. When the server is
// unreachable it falls back to the local cache and flags the result as
// offline.
func (m appModel) cmdLoadSupplies() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SupplyService
	query := m.supplyList.query
	return func() tea.Msg {
		list, err := svc.List(ctx, query)
		if err == nil {
			return suppliesLoadedMsg{list: list}
		}
		cached, cacheErr := svc.ListCached(ctx, query)
		if cacheErr != nil {
			return suppliesLoadedMsg{err: err}
		}
		return suppliesLoadedMsg{list: cached, offline: true}
	}
}

func (m appModel) cmdCreateSupply(supply models.Supply) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SupplyService
	return func() tea.Msg {
		_, err := svc.Create(ctx, supply)
		return supplySavedMsg{err: err}
	}
}

func (m appModel) cmdUpdateSupply(supply models.Supply) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SupplyService
	return func() tea.Msg {
		_, err := svc.Update(ctx, supply)
		return supplySavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteSupply(supplyID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SupplyService
	return func() tea.Msg {
		return supplyDeletedMsg{err: svc.Delete(ctx, supplyID)}
	}
}

func (m appModel) cmdLookupBarcode(barcode string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SupplyService
	return func() tea.Msg {
		product, err := svc.Lookup(ctx, barcode)
		if errors.Is(err, adapter.ErrNotFound) {
			return lookupDoneMsg{notFound: true}
		}
		if err != nil {
			return lookupDoneMsg{err: err}
		}
		return lookupDoneMsg{product: product}
	}
}

func (m appModel) cmdLoadProjects() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ProjectService
	return func() tea.Msg {
		projects, err := svc.List(ctx)
		return projectsLoadedMsg{projects: projects, err: err}
	}
}

func (m appModel) cmdLoadProject(projectID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ProjectService
	return func() tea.Msg {
		project, err := svc.Get(ctx, projectID)
		return projectLoadedMsg{project: project, err: err}
	}
}

func (m appModel) cmdCreateProject(project models.Project) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ProjectService
	return func() tea.Msg {
		_, err := svc.Create(ctx, project)
		return projectSavedMsg{err: err}
	}
}

func (m appModel) cmdUpdateProject(project models.Project) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ProjectService
	return func() tea.Msg {
		_, err := svc.Update(ctx, project)
		return projectSavedMsg{err: err}
	}
}

// cmdSetProjectStatus reports the updated project back through
// projectLoadedMsg so the detail screen refreshes in place.
func (m appModel) cmdSetProjectStatus(projectID int64, status models.ProjectStatus) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ProjectService
	return func() tea.Msg {
		project, err := svc.SetStatus(ctx, projectID, status)
		return projectLoadedMsg{project: project, err: err}
	}
}

func (m appModel) cmdDeleteProject(projectID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ProjectService
	return func() tea.Msg {
		return projectDeletedMsg{err: svc.Delete(ctx, projectID)}
	}
}

func (m appModel) cmdAddMaterial(material models.ProjectMaterial) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ProjectService
	return func() tea.Msg {
		_, err := svc.AddMaterial(ctx, material)
		return materialSavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteMaterial(projectID, materialID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ProjectService
	return func() tea.Msg {
		return materialDeletedMsg{err: svc.DeleteMaterial(ctx, projectID, materialID)}
	}
}

func (m appModel) cmdLoadShoppingList() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ShoppingService
	return func() tea.Msg {
		items, err := svc.ShoppingList(ctx)
		return shoppingLoadedMsg{items: items, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return shoppingLoadedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
