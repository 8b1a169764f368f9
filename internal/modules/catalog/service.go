package catalog

import (
	"context"
	"errors"
	"strings"

	"attareports/internal/domain"
	pkgvalidator "attareports/internal/pkg/validator"
	"attareports/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	clients   ClientRepositoryInterface
	equipment EquipmentRepositoryInterface
}

func NewService(clients ClientRepositoryInterface, equipment EquipmentRepositoryInterface) *Service {
	return &Service{clients: clients, equipment: equipment}
}

func normalizePage(skip, limit int) (int, int) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if skip < 0 {
		skip = 0
	}
	return skip, limit
}

// --- clients ---

func (s *Service) ListClients(ctx context.Context, q ListQuery) ([]domain.Client, error) {
	skip, limit := normalizePage(q.Skip, q.Limit)
	return s.clients.GetAll(ctx, skip, limit)
}

func (s *Service) GetClient(ctx context.Context, id int64) (*domain.Client, error) {
	c, err := s.clients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) CreateClient(ctx context.Context, req CreateClientRequest) (*domain.Client, error) {
	c := &domain.Client{
		Name:    strings.TrimSpace(req.Name),
		Address: strings.TrimSpace(req.Address),
	}
	if fields := pkgvalidator.Validate(c); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}
	if err := s.clients.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) UpdateClient(ctx context.Context, id int64, req UpdateClientRequest) (*domain.Client, error) {
	c, err := s.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		c.Name = strings.TrimSpace(*req.Name)
	}
	if req.Address != nil {
		c.Address = strings.TrimSpace(*req.Address)
	}
	if err := s.clients.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteClient removes a client and its contacts. Admin only.
func (s *Service) DeleteClient(ctx context.Context, actorRole string, id int64) error {
	if actorRole != string(domain.RoleAdmin) {
		return ErrForbidden
	}
	if _, err := s.GetClient(ctx, id); err != nil {
		return err
	}
	return s.clients.Delete(ctx, id)
}

// --- contacts ---

func (s *Service) ListContacts(ctx context.Context, clientID int64) ([]domain.Contact, error) {
	if _, err := s.GetClient(ctx, clientID); err != nil {
		return nil, err
	}
	return s.clients.GetContacts(ctx, clientID)
}

func (s *Service) CreateContact(ctx context.Context, clientID int64, req CreateContactRequest) (*domain.Contact, error) {
	if _, err := s.GetClient(ctx, clientID); err != nil {
		return nil, err
	}
	contact := &domain.Contact{
		ClientID: clientID,
		Name:     strings.TrimSpace(req.Name),
		Position: strings.TrimSpace(req.Position),
		Phone:    strings.TrimSpace(req.Phone),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
	}
	if err := s.clients.CreateContact(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// --- equipment ---

func (s *Service) ListEquipment(ctx context.Context, q ListEquipmentQuery) ([]domain.Equipment, error) {
	if q.Type != "" && !domain.ValidEquipmentType(q.Type) {
		return nil, ErrInvalidEquipmentType
	}
	skip, limit := normalizePage(q.Skip, q.Limit)
	return s.equipment.GetAll(ctx, q.Type, skip, limit)
}

func (s *Service) GetEquipment(ctx context.Context, id int64) (*domain.Equipment, error) {
	e, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *Service) CreateEquipment(ctx context.Context, req CreateEquipmentRequest) (*domain.Equipment, error) {
	if !domain.ValidEquipmentType(req.Type) {
		return nil, ErrInvalidEquipmentType
	}
	serial := strings.TrimSpace(req.SerialNumber)
	exists, err := s.equipment.ExistsBySerial(ctx, serial)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateSerial
	}

	e := &domain.Equipment{
		Type:         req.Type,
		Brand:        strings.TrimSpace(req.Brand),
		Model:        strings.TrimSpace(req.Model),
		SerialNumber: serial,
	}
	if fields := pkgvalidator.Validate(e); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}
	if err := s.equipment.Create(ctx, e); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateSerial
		}
		return nil, err
	}
	return e, nil
}

func (s *Service) UpdateEquipment(ctx context.Context, id int64, req UpdateEquipmentRequest) (*domain.Equipment, error) {
	e, err := s.GetEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Type != nil {
		if !domain.ValidEquipmentType(*req.Type) {
			return nil, ErrInvalidEquipmentType
		}
		e.Type = *req.Type
	}
	if req.Brand != nil {
		e.Brand = strings.TrimSpace(*req.Brand)
	}
	if req.Model != nil {
		e.Model = strings.TrimSpace(*req.Model)
	}
	if req.SerialNumber != nil {
		serial := strings.TrimSpace(*req.SerialNumber)
		if serial != e.SerialNumber {
			exists, err := s.equipment.ExistsBySerial(ctx, serial)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, ErrDuplicateSerial
			}
			e.SerialNumber = serial
		}
	}
	if err := s.equipment.Update(ctx, e); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateSerial
		}
		return nil, err
	}
	return e, nil
}

// DeleteEquipment removes an equipment record. Admin only.
func (s *Service) DeleteEquipment(ctx context.Context, actorRole string, id int64) error {
	if actorRole != string(domain.RoleAdmin) {
		return ErrForbidden
	}
	if _, err := s.GetEquipment(ctx, id); err != nil {
		return err
	}
	return s.equipment.Delete(ctx, id)
}

// EquipmentTypes exposes the accepted type values for form pickers.
func (s *Service) EquipmentTypes() []string {
	return domain.EquipmentTypes()
}
