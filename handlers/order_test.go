package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/haons211/pmai-fooddelivery-datn/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusPath(orderID uint) string {
	return fmt.Sprintf("/api/orders/%d/status", orderID)
}

func statusBody(s models.OrderStatus) map[string]interface{} {
	return map[string]interface{}{"status": string(s)}
}

func TestPlaceOrder_FreezesPayment(t *testing.T) {
	t.Parallel()
	r, h := newTestServer(t)

	vendor := createUser(t, h, "Vera", "vera@example.com", "secret123", "a", models.RoleVendor)
	buyer := createUser(t, h, "Ben", "ben@example.com", "secret123", "b", models.RoleClient)
	restaurant := createRestaurant(t, h, "Pho Corner", &vendor.ID)
	pho := createFood(t, h, "Pho Bo", 8.50, restaurant.ID)
	rolls := createFood(t, h, "Spring Rolls", 4.25, restaurant.ID)

	w := doJSON(t, r, http.MethodPost, "/api/orders", bearer(t, h, buyer.ID), map[string]interface{}{
		"restaurant_id": restaurant.ID,
		"items": []map[string]interface{}{
			{"food_id": pho.ID, "quantity": 2},
			{"food_id": rolls.ID, "quantity": 1},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, h.DB.Preload("Items").Where("buyer_id = ?", buyer.ID).First(&order).Error)
	assert.Equal(t, models.StatusPreparing, order.Status)
	assert.InDelta(t, 21.25, order.Payment, 0.001)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Pho Bo", order.Items[0].Title)
	assert.InDelta(t, 8.50, order.Items[0].Price, 0.001)
}

func TestPlaceOrder_ClosedRestaurant(t *testing.T) {
	t.Parallel()
	r, h := newTestServer(t)

	buyer := createUser(t, h, "Ben", "ben2@example.com", "secret123", "b", models.RoleClient)
	restaurant := createRestaurant(t, h, "Closed Kitchen", nil)
	require.NoError(t, h.DB.Model(&models.Restaurant{}).Where("id = ?", restaurant.ID).Update("is_open", false).Error)
	food := createFood(t, h, "Bun Cha", 6.00, restaurant.ID)

	w := doJSON(t, r, http.MethodPost, "/api/orders", bearer(t, h, buyer.ID), map[string]interface{}{
		"restaurant_id": restaurant.ID,
		"items":         []map[string]interface{}{{"food_id": food.ID, "quantity": 1}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// The role/relationship scenario from the rule table: a client buyer, the
// owning vendor, an unrelated client, and an admin acting on one order.
func TestUpdateOrderStatus_ScenarioMatrix(t *testing.T) {
	t.Parallel()
	r, h := newTestServer(t)

	clientA := createUser(t, h, "A", "a@example.com", "secret123", "x", models.RoleClient)
	vendorB := createUser(t, h, "B", "b@example.com", "secret123", "x", models.RoleVendor)
	clientC := createUser(t, h, "C", "c@example.com", "secret123", "x", models.RoleClient)
	adminD := createUser(t, h, "D", "d@example.com", "secret123", "x", models.RoleAdmin)

	restaurant := createRestaurant(t, h, "B's Kitchen", &vendorB.ID)

	newOrder := func() models.Order {
		order := models.Order{
			BuyerID:      clientA.ID,
			RestaurantID: &restaurant.ID,
			Payment:      12,
			Status:       models.StatusPreparing,
		}
		require.NoError(t, h.DB.Create(&order).Error)
		return order
	}

	t.Run("buyer may cancel", func(t *testing.T) {
		order := newOrder()
		w := doJSON(t, r, http.MethodPut, statusPath(order.ID), bearer(t, h, clientA.ID), statusBody(models.StatusCancelled))
		assert.Equal(t, http.StatusOK, w.Code)

		var saved models.Order
		require.NoError(t, h.DB.First(&saved, order.ID).Error)
		assert.Equal(t, models.StatusCancelled, saved.Status)
	})

	t.Run("buyer may not advance", func(t *testing.T) {
		order := newOrder()
		w := doJSON(t, r, http.MethodPut, statusPath(order.ID), bearer(t, h, clientA.ID), statusBody(models.StatusReady))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("owning vendor advances through the machine", func(t *testing.T) {
		order := newOrder()
		token := bearer(t, h, vendorB.ID)

		for _, next := range []models.OrderStatus{models.StatusReady, models.StatusOnTheWay, models.StatusDelivered} {
			w := doJSON(t, r, http.MethodPut, statusPath(order.ID), token, statusBody(next))
			require.Equal(t, http.StatusOK, w.Code, "transition to %s", next)
		}

		// Terminal: nothing leaves delivered, not even for the vendor.
		w := doJSON(t, r, http.MethodPut, statusPath(order.ID), token, statusBody(models.StatusCancelled))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var history []models.OrderStatusHistory
		require.NoError(t, h.DB.Where("order_id = ?", order.ID).Order("id").Find(&history).Error)
		require.Len(t, history, 3)
		assert.Equal(t, models.StatusPreparing, history[0].FromStatus)
		assert.Equal(t, models.StatusDelivered, history[2].ToStatus)
		assert.Equal(t, vendorB.ID, history[2].ChangedBy)
	})

	t.Run("unrelated client denied everything", func(t *testing.T) {
		order := newOrder()
		token := bearer(t, h, clientC.ID)
		for _, next := range []models.OrderStatus{models.StatusReady, models.StatusCancelled} {
			w := doJSON(t, r, http.MethodPut, statusPath(order.ID), token, statusBody(next))
			assert.Equal(t, http.StatusForbidden, w.Code, "transition to %s", next)
		}
	})

	t.Run("admin bound by structure", func(t *testing.T) {
		order := newOrder()
		token := bearer(t, h, adminD.ID)

		// Structurally illegal jump fails even for admin.
		w := doJSON(t, r, http.MethodPut, statusPath(order.ID), token, statusBody(models.StatusDelivered))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		// A legal transition is always open to admin.
		w = doJSON(t, r, http.MethodPut, statusPath(order.ID), token, statusBody(models.StatusReady))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non-owning vendor denied", func(t *testing.T) {
		otherVendor := createUser(t, h, "E", "e@example.com", "secret123", "x", models.RoleVendor)
		order := newOrder()
		w := doJSON(t, r, http.MethodPut, statusPath(order.ID), bearer(t, h, otherVendor.ID), statusBody(models.StatusReady))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		order := newOrder()
		w := doJSON(t, r, http.MethodPut, statusPath(order.ID), bearer(t, h, adminD.ID),
			map[string]interface{}{"status": "shipped"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("order not found", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, statusPath(999999), bearer(t, h, adminD.ID), statusBody(models.StatusReady))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateOrderStatus_OrderWithoutRestaurant(t *testing.T) {
	t.Parallel()
	r, h := newTestServer(t)

	buyer := createUser(t, h, "Solo", "solo@example.com", "secret123", "x", models.RoleClient)
	vendor := createUser(t, h, "V", "v@example.com", "secret123", "x", models.RoleVendor)
	admin := createUser(t, h, "Adm", "adm@example.com", "secret123", "x", models.RoleAdmin)

	order := models.Order{BuyerID: buyer.ID, Payment: 5, Status: models.StatusPreparing}
	require.NoError(t, h.DB.Create(&order).Error)

	// No owner on record means no ownership grant: only admin advances.
	w := doJSON(t, r, http.MethodPut, statusPath(order.ID), bearer(t, h, vendor.ID), statusBody(models.StatusReady))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPut, statusPath(order.ID), bearer(t, h, admin.ID), statusBody(models.StatusReady))
	assert.Equal(t, http.StatusOK, w.Code)

	// The buyer may still cancel their own order.
	w = doJSON(t, r, http.MethodPut, statusPath(order.ID), bearer(t, h, buyer.ID), statusBody(models.StatusCancelled))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateOrderStatus_BuyerWhoOwnsRestaurantMayCancel(t *testing.T) {
	t.Parallel()
	r, h := newTestServer(t)

	// A client can own a restaurant; ownership must not cost them the
	// buyer-cancel path on their own orders.
	clientOwner := createUser(t, h, "CO", "co@example.com", "secret123", "x", models.RoleClient)
	restaurant := createRestaurant(t, h, "Own Kitchen", &clientOwner.ID)

	order := models.Order{BuyerID: clientOwner.ID, RestaurantID: &restaurant.ID, Payment: 9, Status: models.StatusPreparing}
	require.NoError(t, h.DB.Create(&order).Error)

	token := bearer(t, h, clientOwner.ID)

	// Owning the restaurant without the vendor role still doesn't let
	// them advance the order.
	w := doJSON(t, r, http.MethodPut, statusPath(order.ID), token, statusBody(models.StatusReady))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPut, statusPath(order.ID), token, statusBody(models.StatusCancelled))
	assert.Equal(t, http.StatusOK, w.Code)

	var saved models.Order
	require.NoError(t, h.DB.First(&saved, order.ID).Error)
	assert.Equal(t, models.StatusCancelled, saved.Status)
}

func TestUpdateOrderStatus_SurvivesHistoryWriteFailure(t *testing.T) {
	t.Parallel()
	r, h := newTestServer(t)

	vendor := createUser(t, h, "V", "vh@example.com", "secret123", "x", models.RoleVendor)
	buyer := createUser(t, h, "B", "bh@example.com", "secret123", "x", models.RoleClient)
	restaurant := createRestaurant(t, h, "No Audit", &vendor.ID)

	order := models.Order{BuyerID: buyer.ID, RestaurantID: &restaurant.ID, Payment: 7, Status: models.StatusPreparing}
	require.NoError(t, h.DB.Create(&order).Error)

	// The audit trail is best-effort: a failing history insert must not
	// undo or mask a successful status write.
	require.NoError(t, h.DB.Migrator().DropTable(&models.OrderStatusHistory{}))

	w := doJSON(t, r, http.MethodPut, statusPath(order.ID), bearer(t, h, vendor.ID), statusBody(models.StatusReady))
	assert.Equal(t, http.StatusOK, w.Code)

	var saved models.Order
	require.NoError(t, h.DB.First(&saved, order.ID).Error)
	assert.Equal(t, models.StatusReady, saved.Status)
}

func TestDeleteRestaurant_Authorization(t *testing.T) {
	t.Parallel()
	r, h := newTestServer(t)

	owner := createUser(t, h, "Owner", "owner@example.com", "secret123", "x", models.RoleVendor)
	client := createUser(t, h, "Client", "client@example.com", "secret123", "x", models.RoleClient)
	admin := createUser(t, h, "Admin", "admin@example.com", "secret123", "x", models.RoleAdmin)

	t.Run("non-owner denied, owner allowed", func(t *testing.T) {
		restaurant := createRestaurant(t, h, "Owned", &owner.ID)
		path := fmt.Sprintf("/api/restaurants/%d", restaurant.ID)

		w := doJSON(t, r, http.MethodDelete, path, bearer(t, h, client.ID), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = doJSON(t, r, http.MethodDelete, path, bearer(t, h, owner.ID), nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ownerless restaurant is admin-only", func(t *testing.T) {
		restaurant := createRestaurant(t, h, "Legacy", nil)
		path := fmt.Sprintf("/api/restaurants/%d", restaurant.ID)

		w := doJSON(t, r, http.MethodDelete, path, bearer(t, h, owner.ID), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = doJSON(t, r, http.MethodDelete, path, bearer(t, h, admin.ID), nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing restaurant", func(t *testing.T) {
		w := doJSON(t, r, http.MethodDelete, "/api/restaurants/424242", bearer(t, h, admin.ID), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteAccount_Authorization(t *testing.T) {
	t.Parallel()
	r, h := newTestServer(t)

	victim := createUser(t, h, "Victim", "victim@example.com", "secret123", "x", models.RoleClient)
	stranger := createUser(t, h, "Stranger", "stranger@example.com", "secret123", "x", models.RoleClient)
	admin := createUser(t, h, "Admin", "admin2@example.com", "secret123", "x", models.RoleAdmin)

	path := fmt.Sprintf("/api/users/%d", victim.ID)

	w := doJSON(t, r, http.MethodDelete, path, bearer(t, h, stranger.ID), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodDelete, path, bearer(t, h, victim.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Admin can remove any remaining account.
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/users/%d", stranger.ID), bearer(t, h, admin.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateProfile_Authorization(t *testing.T) {
	t.Parallel()
	r, h := newTestServer(t)

	user := createUser(t, h, "User", "user@example.com", "secret123", "x", models.RoleClient)
	other := createUser(t, h, "Other", "other@example.com", "secret123", "x", models.RoleClient)
	admin := createUser(t, h, "Admin", "admin3@example.com", "secret123", "x", models.RoleAdmin)

	path := fmt.Sprintf("/api/users/%d", user.ID)
	body := map[string]interface{}{"user_name": "Renamed"}

	w := doJSON(t, r, http.MethodPut, path, bearer(t, h, other.ID), body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPut, path, bearer(t, h, user.ID), body)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, path, bearer(t, h, admin.ID), map[string]interface{}{"phone": "0987654321"})
	assert.Equal(t, http.StatusOK, w.Code)

	var saved models.User
	require.NoError(t, h.DB.First(&saved, user.ID).Error)
	assert.Equal(t, "Renamed", saved.UserName)
	assert.Equal(t, "0987654321", saved.Phone)
}

func TestAdminRoutes_Gate(t *testing.T) {
	t.Parallel()
	r, h := newTestServer(t)

	client := createUser(t, h, "Client", "client2@example.com", "secret123", "x", models.RoleClient)
	admin := createUser(t, h, "Admin", "admin4@example.com", "secret123", "x", models.RoleAdmin)

	w := doJSON(t, r, http.MethodGet, "/api/admin/users", bearer(t, h, client.ID), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/admin/users", bearer(t, h, admin.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
