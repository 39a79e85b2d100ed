package handlers

import (
	"context"

	"github.com/adwaits94/datepicker/internal/domain/entities"
	"github.com/adwaits94/datepicker/internal/domain/services"
)

// Catalog edit operations recorded in the audit log.
const (
	OperationAdd    = "add"
	OperationEdit   = "edit"
	OperationDelete = "delete"
	OperationImport = "import"
)

// IdeaHandler handles catalog edits at the application layer. Every
// successful edit reloads the manager's catalog.
type IdeaHandler struct {
	service *services.CatalogService
	manager *Manager
}

// NewIdeaHandler creates a new IdeaHandler.
func NewIdeaHandler(service *services.CatalogService, manager *Manager) *IdeaHandler {
	return &IdeaHandler{
		service: service,
		manager: manager,
	}
}

// HandleList returns every idea in catalog order.
func (h *IdeaHandler) HandleList(ctx context.Context) ([]entities.Idea, error) {
	return h.service.List(ctx)
}

// HandleGet returns one idea by exact name.
func (h *IdeaHandler) HandleGet(ctx context.Context, name string) (entities.Idea, error) {
	return h.service.Get(ctx, name)
}

// HandleAdd adds a new idea.
func (h *IdeaHandler) HandleAdd(ctx context.Context, idea entities.Idea) error {
	if err := h.service.Add(ctx, idea); err != nil {
		return err
	}
	return h.manager.CatalogSaved(ctx, OperationAdd, idea.Name())
}

// HandleEdit replaces the idea called name with idea.
func (h *IdeaHandler) HandleEdit(ctx context.Context, name string, idea entities.Idea) error {
	if err := h.service.Replace(ctx, name, idea); err != nil {
		return err
	}
	return h.manager.CatalogSaved(ctx, OperationEdit, idea.Name())
}

// HandleDelete removes the idea called name. Its history records are kept
// and are skipped by analysis from now on.
func (h *IdeaHandler) HandleDelete(ctx context.Context, name string) error {
	if err := h.service.Delete(ctx, name); err != nil {
		return err
	}
	return h.manager.CatalogSaved(ctx, OperationDelete, name)
}
