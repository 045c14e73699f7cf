package property

import (
	"fmt"

	"github.com/uninest/uninest/internal/user"
)

// Capability is an action an actor may attempt on the property resource.
type Capability string

const (
	CapCreate Capability = "create"
	CapUpdate Capability = "update"
	CapDelete Capability = "delete"
)

// Authorize checks whether the actor holds the capability.
// Create needs an admin or a verified landowner; update and delete need
// an admin or the owning landowner. For CapCreate, p may be nil.
func Authorize(actor *user.User, c Capability, p *Property) error {
	if actor == nil {
		return fmt.Errorf("%w: authentication required", ErrForbidden)
	}

	switch c {
	case CapCreate:
		if actor.IsAdmin() || actor.IsVerifiedLandowner() {
			return nil
		}
		return fmt.Errorf("%w: only verified landowners and admins can create properties", ErrForbidden)
	case CapUpdate, CapDelete:
		if p == nil {
			return fmt.Errorf("%w: no property to authorize against", ErrForbidden)
		}
		if actor.IsAdmin() || p.LandownerID == actor.ID {
			return nil
		}
		return fmt.Errorf("%w: you do not have permission to perform this action", ErrForbidden)
	default:
		return fmt.Errorf("%w: unknown capability %q", ErrForbidden, c)
	}
}
