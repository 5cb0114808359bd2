package room

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Filters narrow the public listing query. Nil / empty fields are skipped;
// the set ones are AND-combined.
type Filters struct {
	OwnerID        string
	IsAvailable    *bool
	ApprovalStatus string
}

type Repository interface {
	Create(ctx context.Context, room *Room) error
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context, f Filters, offset, limit int) ([]Room, int64, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Room, error)
	Update(ctx context.Context, room *Room) error
	Delete(ctx context.Context, id string) error

	OwnerSummary(ctx context.Context, ownerID string) (*OwnerSummary, error)
	TypeSummary(ctx context.Context, typeID string) (*TypeSummary, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, room *Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*Room, error) {
	var room Room
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &room, err
}

func (r *repository) List(ctx context.Context, f Filters, offset, limit int) ([]Room, int64, error) {
	q := r.db.WithContext(ctx).Model(&Room{})

	if f.OwnerID != "" {
		q = q.Where("owner_id = ?", f.OwnerID)
	}
	if f.IsAvailable != nil {
		q = q.Where("is_available = ?", *f.IsAvailable)
	}
	if f.ApprovalStatus != "" {
		q = q.Where("approval_status = ?", f.ApprovalStatus)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rooms []Room
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&rooms).Error
	return rooms, total, err
}

func (r *repository) ListByOwner(ctx context.Context, ownerID string) ([]Room, error) {
	var rooms []Room
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&rooms).Error
	return rooms, err
}

func (r *repository) Update(ctx context.Context, room *Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Room{}).Error
}

// OwnerSummary reads the owner projection straight off the users table.
// A missing owner is not an error: the reference may be dangling.
func (r *repository) OwnerSummary(ctx context.Context, ownerID string) (*OwnerSummary, error) {
	var s OwnerSummary
	tx := r.db.WithContext(ctx).
		Table("users").
		Select("id, name, email").
		Where("id = ?", ownerID).
		Scan(&s)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return &s, nil
}

// TypeSummary reads the room-type projection off the room_types table,
// same dangling-reference rules as OwnerSummary.
func (r *repository) TypeSummary(ctx context.Context, typeID string) (*TypeSummary, error) {
	var s TypeSummary
	tx := r.db.WithContext(ctx).
		Table("room_types").
		Select("id, type_name").
		Where("id = ?", typeID).
		Scan(&s)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return &s, nil
}
