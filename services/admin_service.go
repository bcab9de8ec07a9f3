// services/admin_service.go
package services

import (
	"fmt"

	"sports_equipment_lending/models"
	"sports_equipment_lending/store"

	"go.uber.org/zap"
)

// AdminService handles catalog mutation: item creation and deletion and
// stock adjustments, each with its audit entry.
type AdminService struct {
	repo *store.Repo
	log  *zap.Logger
}

func NewAdminService(repo *store.Repo, log *zap.Logger) *AdminService {
	return &AdminService{repo: repo, log: log}
}

// AddItem creates a new catalog item of the given category.
func (s *AdminService) AddItem(actor, category, name string, stock int) (models.Equipment, error) {
	cat, err := models.ParseCategory(category)
	if err != nil {
		return models.Equipment{}, err
	}
	e, err := s.repo.CreateEquipment(actor, cat, name, stock)
	if err != nil {
		return models.Equipment{}, err
	}
	s.log.Info("item created",
		zap.String("actor", actor),
		zap.Int("equipmentId", e.ID),
		zap.String("category", category),
		zap.String("name", name),
		zap.Int("stock", stock))
	return e, nil
}

// DeleteItem removes item id; it reports whether anything was removed.
func (s *AdminService) DeleteItem(actor string, id int) bool {
	ok := s.repo.DeleteEquipment(actor, id)
	if ok {
		s.log.Info("item deleted", zap.String("actor", actor), zap.Int("equipmentId", id))
	}
	return ok
}

func (s *AdminService) AddStock(actor string, id, qty int) (Outcome, error) {
	e, err := s.repo.AddStock(actor, id, qty)
	if err != nil {
		return Outcome{}, err
	}
	s.log.Info("stock added", zap.String("actor", actor), zap.Int("equipmentId", id), zap.Int("qty", qty))
	return Outcome{Message: fmt.Sprintf("added %d to %q, total now %d", qty, e.Name, e.TotalStock)}, nil
}

func (s *AdminService) RemoveStock(actor string, id, qty int) (Outcome, error) {
	e, err := s.repo.RemoveStock(actor, id, qty)
	if err != nil {
		return Outcome{}, err
	}
	s.log.Info("stock removed", zap.String("actor", actor), zap.Int("equipmentId", id), zap.Int("qty", qty))
	return Outcome{Message: fmt.Sprintf("removed %d from %q, total now %d", qty, e.Name, e.TotalStock)}, nil
}

// List returns catalog snapshots, all of them for a blank keyword.
func (s *AdminService) List(keyword string) []models.Equipment {
	return s.repo.ListEquipment(keyword)
}

// Logs returns the audit trail.
func (s *AdminService) Logs() []models.LogEntry {
	return s.repo.Logs()
}
