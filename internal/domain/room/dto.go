package room

// CreateRequest is the owner-facing creation payload. RoomType accepts
// either a 24-char hex id or an exact type name. The owner id never comes
// from the payload — it is taken from the authenticated caller.
type CreateRequest struct {
	OwnerContactNumber string   `json:"ownerContactNumber"`
	RoomTitle          string   `json:"roomTitle"`
	MonthlyPrice       float64  `json:"monthlyPrice"`
	Location           string   `json:"location"`
	RoomType           string   `json:"roomType"`
	Description        string   `json:"description"`
	Images             []string `json:"images"`
	Videos             []string `json:"videos"`
}

// UpdateRequest carries a partial update. Every field except IsAvailable is
// merged only when present and non-zero; IsAvailable is a pointer so that an
// explicit false is distinguishable from "not provided". RoomType is taken
// as a direct reference value, without name resolution.
type UpdateRequest struct {
	OwnerContactNumber string         `json:"ownerContactNumber"`
	RoomTitle          string         `json:"roomTitle"`
	MonthlyPrice       float64        `json:"monthlyPrice"`
	Location           string         `json:"location"`
	RoomType           string         `json:"roomType"`
	Description        string         `json:"description"`
	Images             []string       `json:"images"`
	Videos             []string       `json:"videos"`
	IsAvailable        *bool          `json:"isAvailable"`
	ApprovalStatus     ApprovalStatus `json:"approvalStatus"`
}

// ListQuery is the parsed public listing query.
type ListQuery struct {
	Filters
	Page  int
	Limit int
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Normalize clamps pagination to sane values.
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
}

// Pages is ceil(total/limit).
func Pages(total int64, limit int) int {
	return int((total + int64(limit) - 1) / int64(limit))
}
