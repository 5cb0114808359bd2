package room

import (
	"context"
	"errors"

	"roomrental/internal/domain/roomtype"
	"roomrental/internal/pkg/hexid"
)

// typeFinder is the slice of the taxonomy repository the resolver needs.
type typeFinder interface {
	FindByName(ctx context.Context, name string) (*roomtype.RoomType, error)
}

// resolveTypeRef turns an id-or-name room-type reference into a concrete id.
// A value shaped like a hex id is trusted as a direct reference without a
// lookup; anything else must match an existing type name exactly.
func resolveTypeRef(ctx context.Context, types typeFinder, ref string) (string, error) {
	if hexid.IsValid(ref) {
		return ref, nil
	}

	t, err := types.FindByName(ctx, ref)
	if err != nil {
		if errors.Is(err, roomtype.ErrNotFound) {
			return "", validationf("room type %q not found. Please use a valid room type name or id", ref)
		}
		return "", err
	}
	return t.ID, nil
}
