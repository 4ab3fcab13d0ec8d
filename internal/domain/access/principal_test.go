//go:build unit

package access_test

import (
	"testing"

	"bookstore-api/internal/domain/access"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPrincipal(t *testing.T) {
	owner := uuid.New()
	anon := access.Anonymous()
	customer := access.NewPrincipal(owner, false, nil)
	other := access.NewPrincipal(uuid.New(), false, nil)
	staff := access.NewPrincipal(uuid.New(), true, nil)
	mailer := access.NewPrincipal(uuid.New(), false, []string{string(access.PermSendPrivateEmail)})

	cases := []struct {
		name string
		got  bool
		want bool
	}{
		{"anonymous is not authenticated", anon.IsAuthenticated(), false},
		{"anonymous cannot mutate catalog", anon.CanMutateCatalog(), false},
		{"customer cannot mutate catalog", customer.CanMutateCatalog(), false},
		{"staff can mutate catalog", staff.CanMutateCatalog(), true},
		{"owner can view own order", customer.CanViewOrder(owner), true},
		{"other customer cannot view order", other.CanViewOrder(owner), false},
		{"anonymous cannot view order", anon.CanViewOrder(uuid.Nil), false},
		{"staff can view any order", staff.CanViewOrder(owner), true},
		{"customer cannot update status", customer.CanUpdateOrderStatus(), false},
		{"staff can update status", staff.CanUpdateOrderStatus(), true},
		{"staff flag does not grant private email", staff.CanSendPrivateEmail(), false},
		{"permission grants private email", mailer.CanSendPrivateEmail(), true},
		{"staff flag without user id is ignored", access.Principal{Staff: true}.IsStaff(), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.got)
		})
	}
}
