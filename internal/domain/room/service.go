package room

import (
	"context"
	"strings"
)

// MediaRemover removes a stored media file by filename. Removal during
// listing delete is best-effort: errors are logged by the implementation
// and never fail the delete.
type MediaRemover interface {
	Remove(filename string) error
}

// Service owns the room listing lifecycle: validated creation, public
// reads, owner-gated mutation and deletion with media cleanup.
type Service struct {
	rooms Repository
	types typeFinder
	media MediaRemover
}

func NewService(rooms Repository, types typeFinder, media MediaRemover) *Service {
	return &Service{rooms: rooms, types: types, media: media}
}

// canModify is the ownership rule for update and delete: only the account
// that created a listing may change it.
func canModify(ownerID, callerID string) bool {
	return ownerID != "" && ownerID == callerID
}

// Create validates required fields, resolves the room-type reference and
// persists a new listing owned by ownerID. Approval always starts pending
// and availability defaults to true regardless of input.
func (s *Service) Create(ctx context.Context, ownerID string, req CreateRequest) (*Room, error) {
	var missing []string
	if strings.TrimSpace(req.RoomTitle) == "" {
		missing = append(missing, "roomTitle")
	}
	if req.MonthlyPrice == 0 {
		missing = append(missing, "monthlyPrice")
	}
	if strings.TrimSpace(req.Location) == "" {
		missing = append(missing, "location")
	}
	if strings.TrimSpace(req.RoomType) == "" {
		missing = append(missing, "roomType")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{
			Message: "Please provide all required fields: roomTitle, monthlyPrice, location, roomType",
			Fields:  missing,
		}
	}

	if strings.TrimSpace(req.OwnerContactNumber) == "" {
		return nil, &ValidationError{
			Message: "Please provide the owner contact number",
			Fields:  []string{"ownerContactNumber"},
		}
	}

	typeID, err := resolveTypeRef(ctx, s.types, strings.TrimSpace(req.RoomType))
	if err != nil {
		return nil, err
	}

	room := &Room{
		OwnerID:            ownerID,
		OwnerContactNumber: strings.TrimSpace(req.OwnerContactNumber),
		RoomTitle:          strings.TrimSpace(req.RoomTitle),
		MonthlyPrice:       req.MonthlyPrice,
		Location:           strings.TrimSpace(req.Location),
		RoomTypeID:         typeID,
		Description:        strings.TrimSpace(req.Description),
		Images:             req.Images,
		Videos:             req.Videos,
		IsAvailable:        true,
		ApprovalStatus:     ApprovalPending,
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// List returns a page of listings plus the unpaged total.
func (s *Service) List(ctx context.Context, q ListQuery) ([]Room, int64, error) {
	q.Normalize()
	offset := (q.Page - 1) * q.Limit
	return s.rooms.List(ctx, q.Filters, offset, q.Limit)
}

// GetByID returns a listing with its owner and room-type references
// resolved to display summaries.
func (s *Service) GetByID(ctx context.Context, id string) (*Details, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withSummaries(ctx, *room)
}

// ListByOwner returns every listing of one owner, joined like GetByID,
// with no availability or approval filtering.
func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Details, error) {
	rooms, err := s.rooms.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	details := make([]Details, 0, len(rooms))
	for _, r := range rooms {
		d, err := s.withSummaries(ctx, r)
		if err != nil {
			return nil, err
		}
		details = append(details, *d)
	}
	return details, nil
}

// Update merges the provided fields into the stored listing. The merge is
// by truthiness for everything except IsAvailable, which is merged by
// presence — so a caller can set isAvailable to false, but cannot clear a
// text field or set monthlyPrice to 0 through this path.
func (s *Service) Update(ctx context.Context, id, callerID string, req UpdateRequest) (*Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canModify(room.OwnerID, callerID) {
		return nil, ErrNotOwner
	}

	if req.OwnerContactNumber != "" {
		room.OwnerContactNumber = req.OwnerContactNumber
	}
	if req.RoomTitle != "" {
		room.RoomTitle = req.RoomTitle
	}
	if req.MonthlyPrice != 0 {
		room.MonthlyPrice = req.MonthlyPrice
	}
	if req.Location != "" {
		room.Location = req.Location
	}
	if req.RoomType != "" {
		room.RoomTypeID = req.RoomType
	}
	if req.Description != "" {
		room.Description = req.Description
	}
	if len(req.Images) > 0 {
		room.Images = req.Images
	}
	if len(req.Videos) > 0 {
		room.Videos = req.Videos
	}
	if req.IsAvailable != nil {
		room.IsAvailable = *req.IsAvailable
	}
	if req.ApprovalStatus != "" {
		if !req.ApprovalStatus.Valid() {
			return nil, validationf("approval status must be pending, approved or rejected")
		}
		room.ApprovalStatus = req.ApprovalStatus
	}

	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// Delete removes a listing after best-effort cleanup of its media files.
// A file missing from the store never fails the delete; the record is
// removed last.
func (s *Service) Delete(ctx context.Context, id, callerID string) error {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canModify(room.OwnerID, callerID) {
		return ErrNotOwner
	}

	for _, filename := range room.MediaFiles() {
		_ = s.media.Remove(filename)
	}

	return s.rooms.Delete(ctx, id)
}

func (s *Service) withSummaries(ctx context.Context, r Room) (*Details, error) {
	owner, err := s.rooms.OwnerSummary(ctx, r.OwnerID)
	if err != nil {
		return nil, err
	}
	typ, err := s.rooms.TypeSummary(ctx, r.RoomTypeID)
	if err != nil {
		return nil, err
	}
	return &Details{Room: r, Owner: owner, RoomType: typ}, nil
}
