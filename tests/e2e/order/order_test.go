//go:build e2e

package order_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"

	resdto "bookstore-api/internal/handler/dto/response"
	"bookstore-api/tests/common/dbtest"
	"bookstore-api/tests/common/httptest"
	"bookstore-api/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	ordersURL = "/api/order"
	orderURL  = "/api/order/%d"
	cartURL   = "/api/cart/%s"
)

type OrderSuite struct {
	e2e.SharedSuite
}

func TestOrderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(OrderSuite))
}

type shopper struct {
	userID     uuid.UUID
	customerID int64
	token      string
}

func (s *OrderSuite) newShopper(email string) shopper {
	t := s.T()
	userID := uuid.New()
	return shopper{
		userID:     userID,
		customerID: dbtest.CreateTestCustomer(t, s.DB, userID, "Ada", "Lovelace", email),
		token:      s.Tokens.CustomerToken(t, userID),
	}
}

func (s *OrderSuite) checkout(token string, cartID uuid.UUID) *resdto.OrderResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, map[string]any{"cart_id": cartID}, token)
	var res resdto.OrderResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	return &res
}

func (s *OrderSuite) TestCheckout() {
	s.Run("cart becomes an unpaid order and is deleted", func() {
		t := s.T()
		buyer := s.newShopper("ada@example.com")
		cat := dbtest.DefaultCategoryID(t, s.DB)
		book1 := dbtest.CreateTestBook(t, s.DB, cat, "The Left Hand of Darkness", "12.50", 5)
		book2 := dbtest.CreateTestBook(t, s.DB, cat, "Solaris Station", "2.25", 5)
		cartID := dbtest.CreateTestCart(t, s.DB)
		dbtest.AddTestCartItem(t, s.DB, cartID, book1, 2)
		dbtest.AddTestCartItem(t, s.DB, cartID, book2, 1)

		order := s.checkout(buyer.token, cartID)

		s.Equal("unpaid", order.Status)
		s.Equal("27.25", order.TotalPrice)
		s.Nil(order.Customer, "customers do not see the customer block")
		want := []*resdto.OrderItemResponse{
			{BookID: book1, BookName: "The Left Hand of Darkness", BookSlug: "the-left-hand-of-darkness", Quantity: 2, UnitPrice: "12.50", TotalPrice: "25.00"},
			{BookID: book2, BookName: "Solaris Station", BookSlug: "solaris-station", Quantity: 1, UnitPrice: "2.25", TotalPrice: "2.25"},
		}
		if diff := cmp.Diff(want, order.Items,
			cmpopts.IgnoreFields(resdto.OrderItemResponse{}, "ID"),
			cmpopts.SortSlices(func(a, b *resdto.OrderItemResponse) bool { return a.BookID < b.BookID }),
		); diff != "" {
			t.Errorf("order items mismatch (-want +got):\n%s", diff)
		}

		s.Equal(0, dbtest.CountRows(t, s.DB, "carts WHERE id = $1", cartID))
		s.Equal(0, dbtest.CountRows(t, s.DB, "cart_items WHERE cart_id = $1", cartID))
		s.Equal(1, dbtest.CountRows(t, s.DB, "outbox_events WHERE aggregate_id = $1 AND event_type = 'order.created'", order.ID))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(cartURL, cartID), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Cart not found")
	})

	s.Run("order prices stay frozen after the book price changes", func() {
		t := s.T()
		buyer := s.newShopper("ada@example.com")
		bookID := dbtest.CreateTestBook(t, s.DB, dbtest.DefaultCategoryID(t, s.DB), "Parable of the Sower", "10.00", 5)
		cartID := dbtest.CreateTestCart(t, s.DB)
		dbtest.AddTestCartItem(t, s.DB, cartID, bookID, 3)

		order := s.checkout(buyer.token, cartID)
		dbtest.SetBookPrice(t, s.DB, bookID, "99.00")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(orderURL, order.ID), nil, buyer.token)
		var got resdto.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		s.Equal("30.00", got.TotalPrice)
		s.Require().Len(got.Items, 1)
		s.Equal("10.00", got.Items[0].UnitPrice)
	})

	s.Run("zero quantity lines are dropped", func() {
		t := s.T()
		buyer := s.newShopper("ada@example.com")
		cat := dbtest.DefaultCategoryID(t, s.DB)
		kept := dbtest.CreateTestBook(t, s.DB, cat, "Kept in the order", "5.00", 5)
		dropped := dbtest.CreateTestBook(t, s.DB, cat, "Dropped from the order", "5.00", 5)
		cartID := dbtest.CreateTestCart(t, s.DB)
		dbtest.AddTestCartItem(t, s.DB, cartID, kept, 1)
		dbtest.AddTestCartItem(t, s.DB, cartID, dropped, 0)

		order := s.checkout(buyer.token, cartID)
		s.Require().Len(order.Items, 1)
		s.Equal(kept, order.Items[0].BookID)
	})

	s.Run("empty cart is rejected and kept", func() {
		t := s.T()
		buyer := s.newShopper("ada@example.com")
		cartID := dbtest.CreateTestCart(t, s.DB)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, map[string]any{"cart_id": cartID}, buyer.token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Cart is empty")
		s.Equal(1, dbtest.CountRows(t, s.DB, "carts WHERE id = $1", cartID))
	})

	s.Run("profile is required and nothing is written without one", func() {
		t := s.T()
		bookID := dbtest.CreateTestBook(t, s.DB, dbtest.DefaultCategoryID(t, s.DB), "No profile yet", "5.00", 5)
		cartID := dbtest.CreateTestCart(t, s.DB)
		dbtest.AddTestCartItem(t, s.DB, cartID, bookID, 1)
		token := s.Tokens.CustomerToken(t, uuid.New())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, map[string]any{"cart_id": cartID}, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Customer profile required before checkout")
		s.Equal(0, dbtest.CountRows(t, s.DB, "orders"))
		s.Equal(1, dbtest.CountRows(t, s.DB, "cart_items WHERE cart_id = $1", cartID))
	})

	s.Run("anonymous checkout is rejected", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, map[string]any{"cart_id": uuid.New()}, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("unknown cart", func() {
		t := s.T()
		buyer := s.newShopper("ada@example.com")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, map[string]any{"cart_id": uuid.New()}, buyer.token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Cart not found")
	})
}

func (s *OrderSuite) TestConcurrentCheckout() {
	s.Run("the same cart yields exactly one order", func() {
		t := s.T()
		buyer := s.newShopper("ada@example.com")
		bookID := dbtest.CreateTestBook(t, s.DB, dbtest.DefaultCategoryID(t, s.DB), "Raced over twice", "5.00", 5)
		cartID := dbtest.CreateTestCart(t, s.DB)
		dbtest.AddTestCartItem(t, s.DB, cartID, bookID, 2)

		const workers = 5
		codes := make([]int, workers)
		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, map[string]any{"cart_id": cartID}, buyer.token)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		created := 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusNotFound:
			default:
				t.Errorf("unexpected status %d", code)
			}
		}
		s.Equal(1, created)
		s.Equal(1, dbtest.CountRows(t, s.DB, "orders WHERE customer_id = $1", buyer.customerID))
		s.Equal(1, dbtest.CountRows(t, s.DB, "order_items"))
	})
}

func (s *OrderSuite) TestCheckoutRollback() {
	s.Run("a failure after the order insert leaves no partial state", func() {
		t := s.T()
		ctx := context.Background()
		buyer := s.newShopper("ada@example.com")
		bookID := dbtest.CreateTestBook(t, s.DB, dbtest.DefaultCategoryID(t, s.DB), "Never shipped", "5.00", 5)
		cartID := dbtest.CreateTestCart(t, s.DB)
		dbtest.AddTestCartItem(t, s.DB, cartID, bookID, 2)

		_, err := s.DB.Exec(ctx, `
			CREATE OR REPLACE FUNCTION fail_outbox() RETURNS trigger AS $$
			BEGIN RAISE EXCEPTION 'outbox unavailable'; END; $$ LANGUAGE plpgsql;
			CREATE TRIGGER fail_outbox BEFORE INSERT ON outbox_events
			FOR EACH ROW EXECUTE FUNCTION fail_outbox();`)
		s.Require().NoError(err)
		t.Cleanup(func() {
			_, _ = s.DB.Exec(context.Background(), "DROP TRIGGER IF EXISTS fail_outbox ON outbox_events; DROP FUNCTION IF EXISTS fail_outbox();")
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, map[string]any{"cart_id": cartID}, buyer.token)
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")

		s.Equal(0, dbtest.CountRows(t, s.DB, "orders"))
		s.Equal(0, dbtest.CountRows(t, s.DB, "order_items"))
		s.Equal(1, dbtest.CountRows(t, s.DB, "cart_items WHERE cart_id = $1 AND quantity = 2", cartID))
	})
}

func (s *OrderSuite) TestAccess() {
	s.Run("customers only list and read their own orders", func() {
		t := s.T()
		alice := s.newShopper("alice@example.com")
		bob := s.newShopper("bob@example.com")
		bookID := dbtest.CreateTestBook(t, s.DB, dbtest.DefaultCategoryID(t, s.DB), "Shared favourite", "5.00", 5)

		cartA := dbtest.CreateTestCart(t, s.DB)
		dbtest.AddTestCartItem(t, s.DB, cartA, bookID, 1)
		aliceOrder := s.checkout(alice.token, cartA)

		cartB := dbtest.CreateTestCart(t, s.DB)
		dbtest.AddTestCartItem(t, s.DB, cartB, bookID, 1)
		s.checkout(bob.token, cartB)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL, nil, alice.token)
		var list resdto.OrderListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		s.Require().Len(list.Orders, 1)
		s.Equal(aliceOrder.ID, list.Orders[0].ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(orderURL, aliceOrder.ID), nil, bob.token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Permission denied")
	})

	s.Run("staff see all orders with the customer block", func() {
		t := s.T()
		alice := s.newShopper("alice@example.com")
		bookID := dbtest.CreateTestBook(t, s.DB, dbtest.DefaultCategoryID(t, s.DB), "Staff picks", "5.00", 5)
		cartID := dbtest.CreateTestCart(t, s.DB)
		dbtest.AddTestCartItem(t, s.DB, cartID, bookID, 1)
		s.checkout(alice.token, cartID)

		staff := s.Tokens.StaffToken(t, uuid.New())
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL+"?status=unpaid", nil, staff)
		var list resdto.OrderListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		s.Require().Len(list.Orders, 1)
		s.Require().NotNil(list.Orders[0].Customer)
		s.Equal("alice@example.com", list.Orders[0].Customer.Email)
	})

	s.Run("a user without a profile lists nothing", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL, nil, s.Tokens.CustomerToken(t, uuid.New()))
		var list resdto.OrderListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		s.Empty(list.Orders)
	})
}

func (s *OrderSuite) TestUpdateStatus() {
	s.Run("staff move an order through its lifecycle", func() {
		t := s.T()
		buyer := s.newShopper("ada@example.com")
		bookID := dbtest.CreateTestBook(t, s.DB, dbtest.DefaultCategoryID(t, s.DB), "Lifecycle test", "5.00", 5)
		cartID := dbtest.CreateTestCart(t, s.DB)
		dbtest.AddTestCartItem(t, s.DB, cartID, bookID, 1)
		order := s.checkout(buyer.token, cartID)
		staff := s.Tokens.StaffToken(t, uuid.New())
		url := fmt.Sprintf(orderURL, order.ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, map[string]any{"status": "paid"}, staff)
		var paid resdto.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &paid)
		s.Equal("paid", paid.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, url, map[string]any{"status": "unpaid"}, staff)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Invalid order status transition")

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, url, map[string]any{"status": "paid"}, buyer.token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")

		s.Equal(1, dbtest.CountRows(t, s.DB, "outbox_events WHERE aggregate_id = $1 AND event_type = 'order.status_changed'", order.ID))
	})
}
