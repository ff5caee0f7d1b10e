package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avoronova/craft-stash/internal/logger"
	"github.com/avoronova/craft-stash/internal/service"
	"github.com/avoronova/craft-stash/internal/store"
	"github.com/avoronova/craft-stash/internal/utils"
	"github.com/avoronova/craft-stash/models"
)

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	projects, err := h.services.ProjectService.List(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listProjects").Msg("error listing projects")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, projects, http.StatusOK)
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	project.UserID = userID

	created, err := h.services.ProjectService.Create(ctx, project)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid project data provided")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Str("func", "*Handler.createProject").Msg("error creating project")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	projectID, err := idURLParam(r, "id")
	if err != nil {
		log.Err(err).Msg("invalid project id")
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return
	}

	project, err := h.services.ProjectService.Get(ctx, userID, projectID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrProjectNotFound):
			log.Err(err).Msg("project not found")
			http.Error(w, "project not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("func", "*Handler.getProject").Msg("error getting project")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, project, http.StatusOK)
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	projectID, err := idURLParam(r, "id")
	if err != nil {
		log.Err(err).Msg("invalid project id")
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return
	}

	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	project.ID = projectID
	project.UserID = userID

	updated, err := h.services.ProjectService.Update(ctx, project)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid project data provided")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrProjectNotFound):
			log.Err(err).Msg("project not found")
			http.Error(w, "project not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("func", "*Handler.updateProject").Msg("error updating project")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) setProjectStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	projectID, err := idURLParam(r, "id")
	if err != nil {
		log.Err(err).Msg("invalid project id")
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return
	}

	var body struct {
		Status models.ProjectStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	project, err := h.services.ProjectService.SetStatus(ctx, userID, projectID, body.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid project status provided")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrProjectNotFound):
			log.Err(err).Msg("project not found")
			http.Error(w, "project not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("func", "*Handler.setProjectStatus").Msg("error changing project status")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, project, http.StatusOK)
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	projectID, err := idURLParam(r, "id")
	if err != nil {
		log.Err(err).Msg("invalid project id")
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return
	}

	if err := h.services.ProjectService.Delete(ctx, userID, projectID); err != nil {
		switch {
		case errors.Is(err, store.ErrProjectNotFound):
			log.Err(err).Msg("project not found")
			http.Error(w, "project not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("func", "*Handler.deleteProject").Msg("error deleting project")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addMaterial(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	projectID, err := idURLParam(r, "id")
	if err != nil {
		log.Err(err).Msg("invalid project id")
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return
	}

	var material models.ProjectMaterial
	if err := json.NewDecoder(r.Body).Decode(&material); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	material.ProjectID = projectID

	created, err := h.services.ProjectService.AddMaterial(ctx, userID, material)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid material data provided")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrProjectNotFound):
			log.Err(err).Msg("project not found")
			http.Error(w, "project not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("func", "*Handler.addMaterial").Msg("error adding project material")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) deleteMaterial(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	projectID, err := idURLParam(r, "id")
	if err != nil {
		log.Err(err).Msg("invalid project id")
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return
	}

	materialID, err := idURLParam(r, "materialID")
	if err != nil {
		log.Err(err).Msg("invalid material id")
		http.Error(w, "invalid material id", http.StatusBadRequest)
		return
	}

	if err := h.services.ProjectService.DeleteMaterial(ctx, userID, projectID, materialID); err != nil {
		switch {
		case errors.Is(err, store.ErrMaterialNotFound):
			log.Err(err).Msg("project material not found")
			http.Error(w, "project material not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("func", "*Handler.deleteMaterial").Msg("error deleting project material")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
