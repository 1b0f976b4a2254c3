package service_test

import (
	"context"
	"testing"
	"time"

	appErrors "github.com/florista/storefront/internal/errors"
	"github.com/florista/storefront/internal/models"
	repository "github.com/florista/storefront/internal/repositories"
	"github.com/florista/storefront/internal/scheduler"
	service "github.com/florista/storefront/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	orders   service.OrderService
	cart     service.CartService
	sessions *repository.SessionRepository
	sched    *scheduler.Scheduler
}

func newOrderFixture(t *testing.T, timing service.OrderTiming) *orderFixture {
	t.Helper()

	cartRepo := repository.NewCartRepository()
	sessionRepo := repository.NewSessionRepository()
	sched := scheduler.New()
	t.Cleanup(sched.Stop)

	return &orderFixture{
		orders:   service.NewOrderService(repository.NewOrderRepository(), cartRepo, sessionRepo, sched, timing),
		cart:     service.NewCartService(cartRepo),
		sessions: sessionRepo,
		sched:    sched,
	}
}

func validCheckout() *models.CheckoutRequest {
	return &models.CheckoutRequest{Name: "Anna", Phone: "+7 900 000-00-00", Address: "12 Tulip Lane"}
}

func seedCart(t *testing.T, f *orderFixture, sessionID string) *models.Cart {
	t.Helper()

	ctx := context.Background()

	_, err := f.cart.AddItem(ctx, sessionID, &models.AddCartItemRequest{ItemID: "flower-1", Name: "Red Rose", Price: 150})
	require.NoError(t, err)
	cart, err := f.cart.AddItem(ctx, sessionID, &models.AddCartItemRequest{ItemID: "bouquet-1", Name: "Tenderness", Price: 2500})
	require.NoError(t, err)

	return cart
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()
	timing := service.OrderTiming{AssemblingDelay: time.Hour, ReadyDelay: time.Hour}

	t.Run("Failure - Empty Cart", func(t *testing.T) {
		// Arrange
		f := newOrderFixture(t, timing)

		// Act
		order, err := f.orders.Checkout(ctx, "session-1", validCheckout())

		// Assert
		assert.Nil(t, order)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
	})

	t.Run("Failure - Blank Customer Name Leaves Everything Untouched", func(t *testing.T) {
		// Arrange
		f := newOrderFixture(t, timing)
		seedCart(t, f, "session-1")

		// Act
		order, err := f.orders.Checkout(ctx, "session-1", &models.CheckoutRequest{Name: "   ", Phone: "x", Address: "y"})

		// Assert: no order, cart intact
		assert.Nil(t, order)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)

		cart, err := f.cart.GetCart(ctx, "session-1")
		require.NoError(t, err)
		assert.Len(t, cart.Lines, 2)

		_, err = f.orders.CurrentOrder(ctx, "session-1")
		assert.Error(t, err)
	})

	t.Run("Success - Snapshots Cart And Resets Session", func(t *testing.T) {
		// Arrange
		f := newOrderFixture(t, timing)
		cartBefore := seedCart(t, f, "session-1")

		// Act
		order, err := f.orders.Checkout(ctx, "session-1", validCheckout())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusPending, order.Status)
		assert.Equal(t, cartBefore.Total, order.Total)
		assert.Len(t, order.Items, 2)
		assert.NotEmpty(t, order.ID)
		assert.Nil(t, order.ReadyAt)
		assert.WithinDuration(t, time.Now(), order.CreatedAt, time.Second)

		cart, err := f.cart.GetCart(ctx, "session-1")
		require.NoError(t, err)
		assert.Empty(t, cart.Lines)

		state, err := f.sessions.Get(ctx, "session-1")
		require.NoError(t, err)
		assert.Equal(t, models.ViewTracking, state.ActiveView)
		assert.False(t, state.CartOpen)
	})

	t.Run("Success - Order Snapshot Is Frozen Against Later Cart Edits", func(t *testing.T) {
		// Arrange
		f := newOrderFixture(t, timing)
		seedCart(t, f, "session-1")

		order, err := f.orders.Checkout(ctx, "session-1", validCheckout())
		require.NoError(t, err)
		totalBefore := order.Total

		// Act: refill the cart after checkout
		_, err = f.cart.AddItem(ctx, "session-1", &models.AddCartItemRequest{ItemID: "bouquet-3", Name: "Spring Mix", Price: 3200})
		require.NoError(t, err)

		// Assert
		current, err := f.orders.CurrentOrder(ctx, "session-1")
		require.NoError(t, err)
		assert.Equal(t, totalBefore, current.Total)
		assert.Len(t, current.Items, 2)
	})
}

func TestOrderTimeline(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Pending To Assembling To Ready", func(t *testing.T) {
		// Arrange
		f := newOrderFixture(t, service.OrderTiming{AssemblingDelay: 40 * time.Millisecond, ReadyDelay: 120 * time.Millisecond})
		seedCart(t, f, "session-1")

		// Act
		order, err := f.orders.Checkout(ctx, "session-1", validCheckout())
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusPending, order.Status)

		// Assert
		assert.Eventually(t, func() bool {
			current, err := f.orders.CurrentOrder(ctx, "session-1")

			return err == nil && current.Status == models.OrderStatusAssembling
		}, time.Second, 5*time.Millisecond)

		assert.Eventually(t, func() bool {
			current, err := f.orders.CurrentOrder(ctx, "session-1")

			return err == nil && current.Status == models.OrderStatusReady && current.ReadyAt != nil
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("Success - Replacement Cancels The Old Order's Timers", func(t *testing.T) {
		// Arrange
		f := newOrderFixture(t, service.OrderTiming{AssemblingDelay: 50 * time.Millisecond, ReadyDelay: 150 * time.Millisecond})
		seedCart(t, f, "session-1")

		first, err := f.orders.Checkout(ctx, "session-1", validCheckout())
		require.NoError(t, err)

		// Act: a second checkout before the first order's timers fire
		seedCart(t, f, "session-1")
		second, err := f.orders.Checkout(ctx, "session-1", validCheckout())
		require.NoError(t, err)
		require.NotEqual(t, first.ID, second.ID)

		// Assert: the second order advances on its own schedule
		assert.Eventually(t, func() bool {
			current, err := f.orders.CurrentOrder(ctx, "session-1")

			return err == nil && current.ID == second.ID && current.Status == models.OrderStatusReady
		}, time.Second, 5*time.Millisecond)
	})
}

func TestAdvanceStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Failure - No Current Order", func(t *testing.T) {
		// Arrange
		f := newOrderFixture(t, service.OrderTiming{AssemblingDelay: time.Hour, ReadyDelay: time.Hour})

		// Act
		order, err := f.orders.AdvanceStatus(ctx, "session-1", models.OrderStatusCompleted)

		// Assert
		assert.Nil(t, order)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})

	t.Run("Failure - Order Not Ready Yet", func(t *testing.T) {
		// Arrange
		f := newOrderFixture(t, service.OrderTiming{AssemblingDelay: time.Hour, ReadyDelay: time.Hour})
		seedCart(t, f, "session-1")
		_, err := f.orders.Checkout(ctx, "session-1", validCheckout())
		require.NoError(t, err)

		// Act
		order, err := f.orders.AdvanceStatus(ctx, "session-1", models.OrderStatusCompleted)

		// Assert
		assert.Nil(t, order)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeInvalidTransition, appErr.Code)
	})

	t.Run("Failure - Unsupported Target", func(t *testing.T) {
		// Arrange
		f := newOrderFixture(t, service.OrderTiming{AssemblingDelay: time.Hour, ReadyDelay: time.Hour})
		seedCart(t, f, "session-1")
		_, err := f.orders.Checkout(ctx, "session-1", validCheckout())
		require.NoError(t, err)

		// Act
		order, err := f.orders.AdvanceStatus(ctx, "session-1", models.OrderStatusAssembling)

		// Assert
		assert.Nil(t, order)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
	})

	t.Run("Success - Pickup Completes A Ready Order", func(t *testing.T) {
		// Arrange
		f := newOrderFixture(t, service.OrderTiming{AssemblingDelay: 10 * time.Millisecond, ReadyDelay: 30 * time.Millisecond})
		seedCart(t, f, "session-1")
		_, err := f.orders.Checkout(ctx, "session-1", validCheckout())
		require.NoError(t, err)

		require.Eventually(t, func() bool {
			current, err := f.orders.CurrentOrder(ctx, "session-1")

			return err == nil && current.Status == models.OrderStatusReady
		}, time.Second, 5*time.Millisecond)

		// Act
		order, err := f.orders.AdvanceStatus(ctx, "session-1", models.OrderStatusCompleted)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusCompleted, order.Status)
	})

	t.Run("Success - Delivery From A Ready Order", func(t *testing.T) {
		// Arrange
		f := newOrderFixture(t, service.OrderTiming{AssemblingDelay: 10 * time.Millisecond, ReadyDelay: 30 * time.Millisecond})
		seedCart(t, f, "session-1")
		_, err := f.orders.Checkout(ctx, "session-1", validCheckout())
		require.NoError(t, err)

		require.Eventually(t, func() bool {
			current, err := f.orders.CurrentOrder(ctx, "session-1")

			return err == nil && current.Status == models.OrderStatusReady
		}, time.Second, 5*time.Millisecond)

		// Act
		order, err := f.orders.AdvanceStatus(ctx, "session-1", models.OrderStatusDelivering)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusDelivering, order.Status)

		// Terminal in this UI: no further transition is offered or accepted.
		_, err = f.orders.AdvanceStatus(ctx, "session-1", models.OrderStatusCompleted)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeInvalidTransition, appErr.Code)
	})
}
