package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	apperrors "github.com/cenentury0941/ready-api/internal/errors"

	"github.com/cenentury0941/ready-api/internal/data/pgxutil"
	"github.com/cenentury0941/ready-api/internal/domain/model"
)

const orderColumns = `id, confirmation_number, user_id, full_name, location, items, status, created_at, updated_at`

// OrderRepo provides database operations for orders.
type OrderRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewOrderRepo creates a new OrderRepo with real time provider.
func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewOrderRepoWithTimeProvider creates a new OrderRepo with a custom time provider (useful for tests).
func NewOrderRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *OrderRepo {
	return &OrderRepo{DB: db, timeProvider: tp}
}

// Create inserts a new order in the Received state.
func (r *OrderRepo) Create(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error) {
	if req == nil {
		return nil, errors.New("create order request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	items, err := req.Items.MarshalForDB()
	if err != nil {
		return nil, fmt.Errorf("marshal items: %w", err)
	}

	now := r.timeProvider.Now().UTC()
	var out model.Order
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx, `
			INSERT INTO orders (
				confirmation_number, user_id, full_name, location, items, status, created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $7
			) RETURNING `+orderColumns,
			strings.TrimSpace(req.ConfirmationNumber),
			strings.TrimSpace(req.UserID),
			strings.TrimSpace(req.FullName),
			strings.TrimSpace(req.Location),
			items,
			model.OrderStatusReceived,
			now,
		)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		out, qerr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Order])
		return qerr
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves an order by ID.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*model.Order, error) {
	var out model.Order
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx,
			`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		out, qerr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Order])
		return qerr
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// List retrieves all orders with pagination, newest first (the admin view).
func (r *OrderRepo) List(ctx context.Context, limit, offset int) ([]*model.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.Order
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx,
			`SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`,
			limit, offset)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		rowsOut, qerr = pgx.CollectRows(rows, pgx.RowToStructByName[model.Order])
		return qerr
	}); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", apperrors.MapDBError(err))
	}

	res := make([]*model.Order, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// ListByUser retrieves a buyer's own orders, newest first.
func (r *OrderRepo) ListByUser(ctx context.Context, userID string) ([]*model.Order, error) {
	var rowsOut []model.Order
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx,
			`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC, id DESC`,
			userID)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		rowsOut, qerr = pgx.CollectRows(rows, pgx.RowToStructByName[model.Order])
		return qerr
	}); err != nil {
		return nil, fmt.Errorf("failed to list orders for user: %w", apperrors.MapDBError(err))
	}

	res := make([]*model.Order, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// UpdateStatus moves an order to the given state. The status value must
// already be validated against the closed enum.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	var out model.Order
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx, `
			UPDATE orders SET status = $1, updated_at = $2
			WHERE id = $3
			RETURNING `+orderColumns,
			status, r.timeProvider.Now().UTC(), id)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		out, qerr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Order])
		return qerr
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}
