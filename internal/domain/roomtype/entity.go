package roomtype

import (
	"time"

	"gorm.io/gorm"

	"roomrental/internal/pkg/hexid"
)

// Status of a room type in the taxonomy.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

const (
	MinNameLen = 2
	MaxNameLen = 50
)

// RoomType is a reference taxonomy record that room listings point to.
// Name uniqueness is enforced by the database index.
type RoomType struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	TypeName  string    `gorm:"column:type_name;size:50;uniqueIndex;not null" json:"typeName"`
	Status    Status    `gorm:"column:status;default:active" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (RoomType) TableName() string { return "room_types" }

func (t *RoomType) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = hexid.New()
	}
	return nil
}
