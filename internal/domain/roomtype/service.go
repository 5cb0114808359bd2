package roomtype

import (
	"context"
	"strings"
)

// Service manages the room-type taxonomy.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create adds a taxonomy entry. The name is trimmed; status defaults to
// active. A duplicate name surfaces as ErrNameTaken via the db constraint.
func (s *Service) Create(ctx context.Context, name string, status Status) (*RoomType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if len(name) < MinNameLen || len(name) > MaxNameLen {
		return nil, ErrInvalidName
	}

	if status == "" {
		status = StatusActive
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	t := &RoomType{
		TypeName: name,
		Status:   status,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) List(ctx context.Context) ([]RoomType, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*RoomType, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateInput carries the optional fields of an update. Empty values leave
// the stored field unchanged.
type UpdateInput struct {
	TypeName string
	Status   Status
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*RoomType, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.TypeName != "" {
		name := strings.TrimSpace(in.TypeName)
		if len(name) < MinNameLen || len(name) > MaxNameLen {
			return nil, ErrInvalidName
		}
		t.TypeName = name
	}
	if in.Status != "" {
		if !in.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		t.Status = in.Status
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes a taxonomy entry. Listings referencing it are not touched;
// a listing may be left pointing at a deleted room type.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
