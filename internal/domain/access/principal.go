package access

import (
	"slices"

	"github.com/google/uuid"
)

type Permission string

// PermSendPrivateEmail is granted individually and is not implied by staff.
const PermSendPrivateEmail Permission = "send_private_email"

// Principal is the caller as established by the auth middleware.
type Principal struct {
	UserID      uuid.UUID
	Staff       bool
	Permissions []Permission
}

func Anonymous() Principal {
	return Principal{}
}

func NewPrincipal(userID uuid.UUID, staff bool, permissions []string) Principal {
	perms := make([]Permission, 0, len(permissions))
	for _, p := range permissions {
		perms = append(perms, Permission(p))
	}
	return Principal{UserID: userID, Staff: staff, Permissions: perms}
}

func (p Principal) IsAuthenticated() bool {
	return p.UserID != uuid.Nil
}

func (p Principal) IsStaff() bool {
	return p.IsAuthenticated() && p.Staff
}

func (p Principal) Has(perm Permission) bool {
	return p.IsAuthenticated() && slices.Contains(p.Permissions, perm)
}

// Catalog reads are public; writes are for staff only.
func (p Principal) CanMutateCatalog() bool {
	return p.IsStaff()
}

func (p Principal) CanModerateComments() bool {
	return p.IsStaff()
}

func (p Principal) CanViewAllOrders() bool {
	return p.IsStaff()
}

// CanViewOrder allows staff and the user that owns the order.
func (p Principal) CanViewOrder(ownerUserID uuid.UUID) bool {
	if p.IsStaff() {
		return true
	}
	return p.IsAuthenticated() && p.UserID == ownerUserID
}

func (p Principal) CanUpdateOrderStatus() bool {
	return p.IsStaff()
}

func (p Principal) CanListCustomers() bool {
	return p.IsStaff()
}

func (p Principal) CanSendPrivateEmail() bool {
	return p.Has(PermSendPrivateEmail)
}
