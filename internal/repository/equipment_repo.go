package repository

import (
	"context"

	"attareports/internal/domain"

	"gorm.io/gorm"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

func (r *EquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	var e domain.Equipment
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EquipmentRepository) GetAll(ctx context.Context, equipmentType string, skip, limit int) ([]domain.Equipment, error) {
	q := r.db.WithContext(ctx).Model(&domain.Equipment{})
	if equipmentType != "" {
		q = q.Where("type = ?", equipmentType)
	}

	var equipment []domain.Equipment
	err := q.Order("id").Offset(skip).Limit(limit).Find(&equipment).Error
	return equipment, err
}

func (r *EquipmentRepository) Update(ctx context.Context, e *domain.Equipment) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *EquipmentRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Equipment{}, id).Error
}

func (r *EquipmentRepository) ExistsBySerial(ctx context.Context, serial string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Equipment{}).
		Where("serial_number = ?", serial).
		Count(&count).Error
	return count > 0, err
}

func (r *EquipmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Equipment{}).Count(&count).Error
	return count, err
}
