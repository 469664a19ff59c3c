package repository

import (
	"github.com/handmadefactory/backend/internal/domain"
	"gorm.io/gorm"
)

type ItemRepository interface {
	List() ([]domain.Item, error)
	Create(item *domain.Item) error
	Delete(itemID uint) (int64, error)
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

// List returns all items newest-first by identifier.
func (r *itemRepository) List() ([]domain.Item, error) {
	var items []domain.Item
	if err := r.db.Order("id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) Create(item *domain.Item) error {
	return r.db.Create(item).Error
}

// Delete removes an item and reports how many rows were affected, so the
// caller can tell a missing id apart from a successful delete.
func (r *itemRepository) Delete(itemID uint) (int64, error) {
	result := r.db.Delete(&domain.Item{}, itemID)
	return result.RowsAffected, result.Error
}
