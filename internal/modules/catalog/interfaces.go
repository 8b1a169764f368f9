package catalog

import (
	"context"

	"attareports/internal/domain"
)

type ClientRepositoryInterface interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	GetAll(ctx context.Context, skip, limit int) ([]domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id int64) error
	CreateContact(ctx context.Context, c *domain.Contact) error
	GetContacts(ctx context.Context, clientID int64) ([]domain.Contact, error)
}

type EquipmentRepositoryInterface interface {
	Create(ctx context.Context, e *domain.Equipment) error
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	GetAll(ctx context.Context, equipmentType string, skip, limit int) ([]domain.Equipment, error)
	Update(ctx context.Context, e *domain.Equipment) error
	Delete(ctx context.Context, id int64) error
	ExistsBySerial(ctx context.Context, serial string) (bool, error)
}
