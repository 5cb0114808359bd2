package roomtype

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, t *RoomType) error
	List(ctx context.Context) ([]RoomType, error)
	GetByID(ctx context.Context, id string) (*RoomType, error)
	FindByName(ctx context.Context, name string) (*RoomType, error)
	Update(ctx context.Context, t *RoomType) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *RoomType) error {
	err := r.db.WithContext(ctx).Create(t).Error
	if isUniqueViolation(err) {
		return ErrNameTaken
	}
	return err
}

func (r *repository) List(ctx context.Context) ([]RoomType, error) {
	var types []RoomType
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&types).Error
	return types, err
}

func (r *repository) GetByID(ctx context.Context, id string) (*RoomType, error) {
	var t RoomType
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &t, err
}

func (r *repository) FindByName(ctx context.Context, name string) (*RoomType, error) {
	var t RoomType
	err := r.db.WithContext(ctx).Where("type_name = ?", name).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &t, err
}

func (r *repository) Update(ctx context.Context, t *RoomType) error {
	err := r.db.WithContext(ctx).Save(t).Error
	if isUniqueViolation(err) {
		return ErrNameTaken
	}
	return err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&RoomType{}).Error
}

// isUniqueViolation detects the type_name uniqueness constraint firing,
// for both backends database.Connect can return.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
