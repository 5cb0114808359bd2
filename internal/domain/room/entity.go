package room

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"roomrental/internal/pkg/hexid"
)

// ApprovalStatus of a listing in the moderation flow.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

func (s ApprovalStatus) Valid() bool {
	return s == ApprovalPending || s == ApprovalApproved || s == ApprovalRejected
}

// StringList stores an ordered list of filenames as a JSON text column,
// which works the same on postgres and sqlite.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = StringList{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported StringList source %T", src)
	}
}

// Room is a rental listing. OwnerID references the account that created it;
// RoomTypeID references the taxonomy. The room-type reference is resolved at
// write time only — deleting a room type can leave listings pointing at a
// record that no longer exists.
type Room struct {
	ID                 string         `gorm:"column:id;primaryKey" json:"id"`
	OwnerID            string         `gorm:"column:owner_id;size:24;index;not null" json:"ownerId"`
	OwnerContactNumber string         `gorm:"column:owner_contact_number;not null" json:"ownerContactNumber"`
	RoomTitle          string         `gorm:"column:room_title;not null" json:"roomTitle"`
	MonthlyPrice       float64        `gorm:"column:monthly_price;not null" json:"monthlyPrice"`
	Location           string         `gorm:"column:location;not null" json:"location"`
	RoomTypeID         string         `gorm:"column:room_type_id;size:24;index;not null" json:"roomType"`
	Description        string         `gorm:"column:description" json:"description,omitempty"`
	Images             StringList     `gorm:"column:images;type:text" json:"images"`
	Videos             StringList     `gorm:"column:videos;type:text" json:"videos"`
	IsAvailable        bool           `gorm:"column:is_available;default:true" json:"isAvailable"`
	ApprovalStatus     ApprovalStatus `gorm:"column:approval_status;default:pending" json:"approvalStatus"`
	CreatedAt          time.Time      `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt          time.Time      `gorm:"column:updated_at" json:"updatedAt"`
}

func (Room) TableName() string { return "rooms" }

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = hexid.New()
	}
	return nil
}

// MediaFiles returns images followed by videos, the order delete cleanup
// walks them in.
func (r *Room) MediaFiles() []string {
	files := make([]string, 0, len(r.Images)+len(r.Videos))
	files = append(files, r.Images...)
	files = append(files, r.Videos...)
	return files
}

// OwnerSummary is the display-friendly owner projection attached to reads.
type OwnerSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TypeSummary is the display-friendly room-type projection attached to reads.
type TypeSummary struct {
	ID       string `json:"id"`
	TypeName string `json:"typeName"`
}

// Details is a listing with its references resolved at read time.
// A dangling owner or room-type reference yields a nil summary.
type Details struct {
	Room
	Owner    *OwnerSummary `json:"owner,omitempty"`
	RoomType *TypeSummary  `json:"roomTypeInfo,omitempty"`
}
