package devseed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cenentury0941/ready-api/internal/domain/model"
	"github.com/cenentury0941/ready-api/internal/mocks"
)

func TestRun_SkipsPopulatedCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBookRepository(ctrl)

	repo.EXPECT().List(gomock.Any(), false, 1, 0).
		Return([]*model.Book{{ID: "existing"}}, nil)

	require.NoError(t, Run(context.Background(), repo, nil))
}

func TestRun_SeedsEmptyCatalogApproved(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBookRepository(ctrl)

	repo.EXPECT().List(gomock.Any(), false, 1, 0).Return([]*model.Book{}, nil)

	var created, approved int
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *model.CreateBookRequest) (*model.Book, error) {
			created++
			assert.NotEmpty(t, req.Title)
			assert.NotEmpty(t, req.Author)
			assert.Equal(t, "Seed", req.AddedBy)
			return &model.Book{ID: req.Title, Title: req.Title}, nil
		}).Times(len(sampleCatalog))
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string, req model.UpdateBookRequest) (*model.Book, error) {
			approved++
			require.NotNil(t, req.IsApproved)
			assert.True(t, *req.IsApproved)
			return &model.Book{ID: id, IsApproved: true}, nil
		}).Times(len(sampleCatalog))

	require.NoError(t, Run(context.Background(), repo, nil))
	assert.Equal(t, len(sampleCatalog), created)
	assert.Equal(t, len(sampleCatalog), approved)
}
