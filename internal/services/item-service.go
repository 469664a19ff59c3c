package services

import (
	"strings"

	"github.com/handmadefactory/backend/internal/domain"
	"github.com/handmadefactory/backend/internal/repository"
)

type ItemService interface {
	List() ([]domain.Item, error)
	Create(name string, description *string) (*domain.Item, error)
	Delete(itemID uint) error
}

type itemService struct {
	repo repository.ItemRepository
}

func NewItemService(repo repository.ItemRepository) ItemService {
	return &itemService{repo: repo}
}

func (s *itemService) List() ([]domain.Item, error) {
	return s.repo.List()
}

func (s *itemService) Create(name string, description *string) (*domain.Item, error) {
	item := &domain.Item{
		Name:        strings.TrimSpace(name),
		Description: description,
	}
	if err := s.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) Delete(itemID uint) error {
	affected, err := s.repo.Delete(itemID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}
