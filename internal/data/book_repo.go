package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	apperrors "github.com/cenentury0941/ready-api/internal/errors"

	"github.com/cenentury0941/ready-api/internal/data/pgxutil"
	"github.com/cenentury0941/ready-api/internal/domain/model"
)

const bookColumns = `id, title, author, about, thumbnail, qty, notes, added_by, is_approved, created_at, updated_at`

// BookRepo provides database operations for the catalog.
type BookRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewBookRepo creates a new BookRepo with real time provider.
func NewBookRepo(db *sql.DB) *BookRepo {
	return &BookRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewBookRepoWithTimeProvider creates a new BookRepo with a custom time provider (useful for tests).
func NewBookRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *BookRepo {
	return &BookRepo{DB: db, timeProvider: tp}
}

// Create inserts a new catalog entry. Submitted books always start
// unapproved; approval is a separate admin update.
func (r *BookRepo) Create(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error) {
	if req == nil {
		return nil, errors.New("create book request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	notes, err := model.NoteList(nil).MarshalForDB()
	if err != nil {
		return nil, fmt.Errorf("marshal notes: %w", err)
	}

	now := r.timeProvider.Now().UTC()
	var out model.Book
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx, `
			INSERT INTO books (
				title, author, about, thumbnail, qty, notes, added_by, is_approved, created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, false, $8, $8
			) RETURNING `+bookColumns,
			strings.TrimSpace(req.Title),
			strings.TrimSpace(req.Author),
			strings.TrimSpace(req.About),
			strings.TrimSpace(req.Thumbnail),
			req.Qty,
			notes,
			strings.TrimSpace(req.AddedBy),
			now,
		)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		out, qerr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Book])
		return qerr
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a book by ID, approved or not. Callers decide whether
// unapproved entries are visible to the requesting identity.
func (r *BookRepo) GetByID(ctx context.Context, id string) (*model.Book, error) {
	var out model.Book
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx,
			`SELECT `+bookColumns+` FROM books WHERE id = $1`, id)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		out, qerr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Book])
		return qerr
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// List retrieves books with pagination, oldest first. When approvedOnly is
// true only approved entries are returned (the shopper-facing catalog).
func (r *BookRepo) List(ctx context.Context, approvedOnly bool, limit, offset int) ([]*model.Book, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + bookColumns + ` FROM books`
	if approvedOnly {
		query += ` WHERE is_approved = true`
	}
	query += ` ORDER BY created_at ASC, id ASC LIMIT $1 OFFSET $2`

	var rowsOut []model.Book
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx, query, limit, offset)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		rowsOut, qerr = pgx.CollectRows(rows, pgx.RowToStructByName[model.Book])
		return qerr
	}); err != nil {
		return nil, fmt.Errorf("failed to list books: %w", apperrors.MapDBError(err))
	}

	res := make([]*model.Book, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// ListPendingApprovals retrieves all unapproved submissions, oldest first.
func (r *BookRepo) ListPendingApprovals(ctx context.Context) ([]*model.Book, error) {
	var rowsOut []model.Book
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx,
			`SELECT `+bookColumns+` FROM books WHERE is_approved = false ORDER BY created_at ASC, id ASC`)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		rowsOut, qerr = pgx.CollectRows(rows, pgx.RowToStructByName[model.Book])
		return qerr
	}); err != nil {
		return nil, fmt.Errorf("failed to list pending approvals: %w", apperrors.MapDBError(err))
	}

	res := make([]*model.Book, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update applies admin updates (inventory count, approval) to a book.
func (r *BookRepo) Update(ctx context.Context, id string, req model.UpdateBookRequest) (*model.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	setParts := make([]string, 0, 3)
	args := make([]any, 0, 4)
	if req.Qty != nil {
		args = append(args, *req.Qty)
		setParts = append(setParts, fmt.Sprintf("qty = $%d", len(args)))
	}
	if req.IsApproved != nil {
		args = append(args, *req.IsApproved)
		setParts = append(setParts, fmt.Sprintf("is_approved = $%d", len(args)))
	}
	args = append(args, r.timeProvider.Now().UTC())
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", len(args)))

	args = append(args, id)
	query := "UPDATE books SET " + strings.Join(setParts, ", ") +
		" WHERE id = $" + strconv.Itoa(len(args)) +
		" RETURNING " + bookColumns

	var out model.Book
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx, query, args...)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		out, qerr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Book])
		return qerr
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Delete removes a book. Returns false when no row matched.
func (r *BookRepo) Delete(ctx context.Context, id string) (bool, error) {
	var deleted bool
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		tag, qerr := conn.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
		if qerr != nil {
			return qerr
		}
		deleted = tag.RowsAffected() > 0
		return nil
	}); err != nil {
		return false, apperrors.MapDBError(err)
	}
	return deleted, nil
}

// MutateNotes reads the book's note list under a row lock, applies fn, and
// writes the result back in the same transaction. Holding the lock across
// the read keeps concurrent note edits from clobbering each other: the
// second writer sees the first writer's list, not a stale one.
func (r *BookRepo) MutateNotes(ctx context.Context, id string, fn func(model.NoteList) (model.NoteList, error)) (*model.Book, error) {
	now := r.timeProvider.Now().UTC()
	var out model.Book
	if err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{
		Fn: func(tx pgx.Tx) error {
			var current model.NoteList
			if scanErr := tx.QueryRow(ctx,
				`SELECT notes FROM books WHERE id = $1 FOR UPDATE`, id).Scan(&current); scanErr != nil {
				return scanErr
			}

			next, fnErr := fn(current)
			if fnErr != nil {
				return fnErr
			}
			payload, mErr := next.MarshalForDB()
			if mErr != nil {
				return fmt.Errorf("marshal notes: %w", mErr)
			}

			rows, qerr := tx.Query(ctx, `
				UPDATE books SET notes = $1, updated_at = $2
				WHERE id = $3
				RETURNING `+bookColumns, payload, now, id)
			if qerr != nil {
				return qerr
			}
			defer rows.Close()
			out, qerr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Book])
			return qerr
		},
	}); err != nil {
		// fn errors are not database errors and pass through unchanged.
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}
