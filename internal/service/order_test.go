package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/cenentury0941/ready-api/internal/domain/auth"
	"github.com/cenentury0941/ready-api/internal/domain/model"
	apperrors "github.com/cenentury0941/ready-api/internal/errors"
	"github.com/cenentury0941/ready-api/internal/mocks"
)

type orderServiceMocks struct {
	orders  *mocks.MockOrderRepository
	books   *mocks.MockBookRepository
	cart    *mocks.MockCartStore
	profile *mocks.MockProfileDirectory
}

func newTestOrderService(t *testing.T) (*OrderService, orderServiceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := orderServiceMocks{
		orders:  mocks.NewMockOrderRepository(ctrl),
		books:   mocks.NewMockBookRepository(ctrl),
		cart:    mocks.NewMockCartStore(ctrl),
		profile: mocks.NewMockProfileDirectory(ctrl),
	}
	svc := NewOrderService(OrderServiceOptions{
		Orders:  m.orders,
		Books:   m.books,
		Cart:    m.cart,
		Profile: m.profile,
	})
	return svc, m
}

func userSession() *domainauth.Session {
	return &domainauth.Session{
		ID:          "sess-1",
		UserID:      "user-1",
		DisplayName: "Avid Reader",
		Role:        domainauth.RoleUser,
	}
}

func TestOrderService_Place(t *testing.T) {
	svc, m := newTestOrderService(t)

	m.profile.EXPECT().Location(gomock.Any(), "user-1").Return("Chennai", nil)
	m.cart.EXPECT().Get(gomock.Any(), "user-1").Return([]string{"book-1"}, nil)
	m.books.EXPECT().GetByID(gomock.Any(), "book-1").Return(&model.Book{
		ID: "book-1", Title: "The Mythical Man-Month", Author: "Fred Brooks", Thumbnail: "mmm.jpg",
	}, nil)

	var captured *model.CreateOrderRequest
	m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *model.CreateOrderRequest) (*model.Order, error) {
			captured = req
			return &model.Order{
				ID:                 "order-1",
				ConfirmationNumber: req.ConfirmationNumber,
				UserID:             req.UserID,
				FullName:           req.FullName,
				Location:           req.Location,
				Items:              req.Items,
				Status:             model.OrderStatusReceived,
			}, nil
		})
	m.cart.EXPECT().Delete(gomock.Any(), "user-1").Return(nil)

	order, err := svc.Place(context.Background(), userSession())
	require.NoError(t, err)

	assert.Equal(t, "user-1", order.UserID)
	assert.Equal(t, "Avid Reader", order.FullName)
	assert.Equal(t, "Chennai", order.Location)
	assert.Equal(t, model.OrderStatusReceived, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "book-1", order.Items[0].ProductID)
	assert.Equal(t, "The Mythical Man-Month", order.Items[0].Title)

	require.NotNil(t, captured)
	assert.True(t, strings.HasPrefix(captured.ConfirmationNumber, "ORD-"))
	assert.Len(t, captured.ConfirmationNumber, 12)
	assert.Equal(t, strings.ToUpper(captured.ConfirmationNumber), captured.ConfirmationNumber)
}

func TestOrderService_Place_ProfileUnconfigured(t *testing.T) {
	svc, m := newTestOrderService(t)

	// Location resolution fails before the cart or order store is touched;
	// no cart, book, or order expectations are set, so any call would fail
	// the test.
	m.profile.EXPECT().Location(gomock.Any(), "user-1").
		Return("", apperrors.Configuration("Profile directory is not configured. Contact an administrator."))

	_, err := svc.Place(context.Background(), userSession())
	assert.True(t, apperrors.IsConfiguration(err))
}

func TestOrderService_Place_EmptyCart(t *testing.T) {
	svc, m := newTestOrderService(t)

	m.profile.EXPECT().Location(gomock.Any(), "user-1").Return("Chennai", nil)
	m.cart.EXPECT().Get(gomock.Any(), "user-1").Return([]string{}, nil)

	_, err := svc.Place(context.Background(), userSession())
	assert.True(t, apperrors.IsValidation(err))
	assert.ErrorContains(t, err, "cart is empty")
}

func TestOrderService_Place_SkipsVanishedBooks(t *testing.T) {
	svc, m := newTestOrderService(t)

	m.profile.EXPECT().Location(gomock.Any(), "user-1").Return("Chennai", nil)
	m.cart.EXPECT().Get(gomock.Any(), "user-1").Return([]string{"gone", "book-2"}, nil)
	m.books.EXPECT().GetByID(gomock.Any(), "gone").Return(nil, apperrors.NotFound("Book not found"))
	m.books.EXPECT().GetByID(gomock.Any(), "book-2").Return(&model.Book{ID: "book-2", Title: "SICP"}, nil)
	m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *model.CreateOrderRequest) (*model.Order, error) {
			return &model.Order{ID: "order-1", Items: req.Items}, nil
		})
	m.cart.EXPECT().Delete(gomock.Any(), "user-1").Return(nil)

	order, err := svc.Place(context.Background(), userSession())
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "book-2", order.Items[0].ProductID)
}

func TestOrderService_Place_AllBooksVanished(t *testing.T) {
	svc, m := newTestOrderService(t)

	m.profile.EXPECT().Location(gomock.Any(), "user-1").Return("Chennai", nil)
	m.cart.EXPECT().Get(gomock.Any(), "user-1").Return([]string{"gone"}, nil)
	m.books.EXPECT().GetByID(gomock.Any(), "gone").Return(nil, apperrors.NotFound("Book not found"))

	_, err := svc.Place(context.Background(), userSession())
	assert.True(t, apperrors.IsValidation(err))
}

func TestOrderService_Place_CartKeptWhenCreateFails(t *testing.T) {
	svc, m := newTestOrderService(t)

	// cart.Delete has no expectation: a failed create must leave the cart
	// intact for retry.
	m.profile.EXPECT().Location(gomock.Any(), "user-1").Return("Chennai", nil)
	m.cart.EXPECT().Get(gomock.Any(), "user-1").Return([]string{"book-1"}, nil)
	m.books.EXPECT().GetByID(gomock.Any(), "book-1").Return(&model.Book{ID: "book-1"}, nil)
	m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := svc.Place(context.Background(), userSession())
	assert.ErrorContains(t, err, "create order")
}

func TestOrderService_Place_CartClearFailureDoesNotFailOrder(t *testing.T) {
	svc, m := newTestOrderService(t)

	m.profile.EXPECT().Location(gomock.Any(), "user-1").Return("Chennai", nil)
	m.cart.EXPECT().Get(gomock.Any(), "user-1").Return([]string{"book-1"}, nil)
	m.books.EXPECT().GetByID(gomock.Any(), "book-1").Return(&model.Book{ID: "book-1"}, nil)
	m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&model.Order{ID: "order-1"}, nil)
	m.cart.EXPECT().Delete(gomock.Any(), "user-1").Return(errors.New("redis down"))

	order, err := svc.Place(context.Background(), userSession())
	require.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)
}

func TestOrderService_Place_RequiresSession(t *testing.T) {
	svc, _ := newTestOrderService(t)

	_, err := svc.Place(context.Background(), nil)
	assert.Error(t, err)

	_, err = svc.Place(context.Background(), &domainauth.Session{})
	assert.Error(t, err)
}

func TestOrderService_GetForUser_Owner(t *testing.T) {
	svc, m := newTestOrderService(t)

	m.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(&model.Order{ID: "order-1", UserID: "user-1"}, nil)

	order, err := svc.GetForUser(context.Background(), userSession(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)
}

func TestOrderService_GetForUser_OtherUserHidden(t *testing.T) {
	svc, m := newTestOrderService(t)

	m.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(&model.Order{ID: "order-1", UserID: "someone-else"}, nil)

	_, err := svc.GetForUser(context.Background(), userSession(), "order-1")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestOrderService_GetForUser_AdminSeesAll(t *testing.T) {
	svc, m := newTestOrderService(t)

	m.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(&model.Order{ID: "order-1", UserID: "someone-else"}, nil)

	admin := &domainauth.Session{ID: "sess-admin", UserID: "admin-1", Role: domainauth.RoleAdmin}
	order, err := svc.GetForUser(context.Background(), admin, "order-1")
	require.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)
}

func TestOrderService_ListForUser(t *testing.T) {
	svc, m := newTestOrderService(t)

	m.orders.EXPECT().ListByUser(gomock.Any(), "user-1").Return([]*model.Order{{ID: "order-1"}}, nil)

	orders, err := svc.ListForUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	svc, m := newTestOrderService(t)

	m.orders.EXPECT().UpdateStatus(gomock.Any(), "order-1", model.OrderStatusShipped).
		Return(&model.Order{ID: "order-1", Status: model.OrderStatusShipped}, nil)

	order, err := svc.UpdateStatus(context.Background(), "order-1", "shipped")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusShipped, order.Status)
}

func TestOrderService_UpdateStatus_InvalidStatus(t *testing.T) {
	svc, _ := newTestOrderService(t)

	_, err := svc.UpdateStatus(context.Background(), "order-1", "teleported")
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "status", apperrors.GetField(err))
}

func TestGenerateConfirmationNumber(t *testing.T) {
	seen := make(map[string]bool)
	for range 50 {
		cn := generateConfirmationNumber()
		assert.True(t, strings.HasPrefix(cn, "ORD-"))
		assert.Len(t, cn, 12)
		assert.False(t, seen[cn], "confirmation numbers should not repeat")
		seen[cn] = true
	}
}
