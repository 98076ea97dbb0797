package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cenentury0941/ready-api/internal/domain/model"
	apperrors "github.com/cenentury0941/ready-api/internal/errors"
	"github.com/cenentury0941/ready-api/internal/mocks"
)

func TestBookService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBookRepository(ctrl)
	svc := NewBookService(BookServiceOptions{Repo: repo})

	req := &model.CreateBookRequest{
		Title:   "The Go Programming Language",
		Author:  "Alan Donovan",
		Qty:     3,
		AddedBy: "Store Admin",
	}
	repo.EXPECT().Create(gomock.Any(), req).Return(&model.Book{
		ID:         "book-1",
		Title:      req.Title,
		Author:     req.Author,
		Qty:        req.Qty,
		AddedBy:    req.AddedBy,
		IsApproved: false,
	}, nil)

	book, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "book-1", book.ID)
	assert.False(t, book.IsApproved)
}

func TestBookService_Submit_NilRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewBookService(BookServiceOptions{Repo: mocks.NewMockBookRepository(ctrl)})

	_, err := svc.Submit(context.Background(), nil)
	assert.Error(t, err)
}

func TestBookService_Catalog_ApprovedOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBookRepository(ctrl)
	svc := NewBookService(BookServiceOptions{Repo: repo})

	repo.EXPECT().List(gomock.Any(), true, 20, 0).Return([]*model.Book{
		{ID: "book-1", IsApproved: true},
	}, nil)

	books, err := svc.Catalog(context.Background(), 20, 0)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.True(t, books[0].IsApproved)
}

func TestBookService_ListAll_IncludesUnapproved(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBookRepository(ctrl)
	svc := NewBookService(BookServiceOptions{Repo: repo})

	repo.EXPECT().List(gomock.Any(), false, 0, 0).Return([]*model.Book{
		{ID: "book-1", IsApproved: true},
		{ID: "book-2", IsApproved: false},
	}, nil)

	books, err := svc.ListAll(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Len(t, books, 2)
}

func TestBookService_PendingApprovals(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBookRepository(ctrl)
	svc := NewBookService(BookServiceOptions{Repo: repo})

	repo.EXPECT().ListPendingApprovals(gomock.Any()).Return([]*model.Book{
		{ID: "book-2", IsApproved: false},
	}, nil)

	books, err := svc.PendingApprovals(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "book-2", books[0].ID)
}

func TestBookService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBookRepository(ctrl)
	svc := NewBookService(BookServiceOptions{Repo: repo})

	qty := 7
	approved := true
	req := model.UpdateBookRequest{Qty: &qty, IsApproved: &approved}
	repo.EXPECT().Update(gomock.Any(), "book-1", req).Return(&model.Book{
		ID: "book-1", Qty: 7, IsApproved: true,
	}, nil)

	book, err := svc.Update(context.Background(), "book-1", req)
	require.NoError(t, err)
	assert.Equal(t, 7, book.Qty)
	assert.True(t, book.IsApproved)
}

func TestBookService_Reject(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBookRepository(ctrl)
	svc := NewBookService(BookServiceOptions{Repo: repo})

	repo.EXPECT().Delete(gomock.Any(), "book-2").Return(true, nil)

	assert.NoError(t, svc.Reject(context.Background(), "book-2"))
}

func TestBookService_Reject_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBookRepository(ctrl)
	svc := NewBookService(BookServiceOptions{Repo: repo})

	repo.EXPECT().Delete(gomock.Any(), "ghost").Return(false, nil)

	err := svc.Reject(context.Background(), "ghost")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestBookService_GetByID_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBookRepository(ctrl)
	svc := NewBookService(BookServiceOptions{Repo: repo})

	repo.EXPECT().GetByID(gomock.Any(), "book-1").Return(nil, errors.New("db down"))

	_, err := svc.GetByID(context.Background(), "book-1")
	assert.ErrorContains(t, err, "get book by id")
}

func TestNewBookService_RequiresRepo(t *testing.T) {
	assert.Panics(t, func() {
		NewBookService(BookServiceOptions{})
	})
}
