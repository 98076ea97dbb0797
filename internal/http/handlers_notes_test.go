package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cenentury0941/ready-api/internal/domain/model"
	"github.com/cenentury0941/ready-api/internal/mocks"
	"github.com/cenentury0941/ready-api/internal/service"
)

type noteHandlerMocks struct {
	repo    *mocks.MockBookRepository
	profile *mocks.MockProfileDirectory
}

func newNoteHandlers(t *testing.T) (*NoteHandlers, noteHandlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := noteHandlerMocks{
		repo:    mocks.NewMockBookRepository(ctrl),
		profile: mocks.NewMockProfileDirectory(ctrl),
	}
	svc := service.NewNoteService(service.NoteServiceOptions{Repo: m.repo, Profile: m.profile})
	return &NoteHandlers{Svc: svc}, m
}

// expectMutateNotes arms the repo mock to apply the service's mutation to
// the given note list, the way the repository would under its row lock.
func expectMutateNotes(repo *mocks.MockBookRepository, current model.NoteList) *model.NoteList {
	saved := &model.NoteList{}
	repo.EXPECT().MutateNotes(gomock.Any(), "book-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, id string, fn func(model.NoteList) (model.NoteList, error)) (*model.Book, error) {
			next, err := fn(current)
			if err != nil {
				return nil, err
			}
			*saved = next
			return &model.Book{ID: id, Notes: next}, nil
		})
	return saved
}

func noteRequestWith(t *testing.T, method, target, text string, index string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(`{"text":"`+text+`"}`))
	req.SetPathValue("id", "book-1")
	if index != "" {
		req.SetPathValue("index", index)
	}
	return withSession(req, testUserSession())
}

func TestNoteHandlers_List(t *testing.T) {
	handlers, m := newNoteHandlers(t)

	m.repo.EXPECT().GetByID(gomock.Any(), "book-1").Return(&model.Book{
		ID:    "book-1",
		Notes: model.NoteList{{Text: "Changed how I think about design", Contributor: "Someone Else"}},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/books/book-1/notes", nil)
	req.SetPathValue("id", "book-1")
	w := httptest.NewRecorder()

	handlers.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Changed how I think about design")
}

func TestNoteHandlers_Create(t *testing.T) {
	handlers, m := newNoteHandlers(t)
	sess := testUserSession()

	m.profile.EXPECT().PhotoURL(gomock.Any(), sess.UserID).Return("https://photos.example.com/u1.jpg", nil)
	saved := expectMutateNotes(m.repo, model.NoteList{})

	req := noteRequestWith(t, http.MethodPost, "/api/books/book-1/notes", "Loved it", "")
	w := httptest.NewRecorder()

	handlers.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"contributor":"Test Reader"`)
	require.Len(t, *saved, 1)
	assert.Equal(t, "https://photos.example.com/u1.jpg", (*saved)[0].ImageURL)
}

func TestNoteHandlers_Create_Duplicate(t *testing.T) {
	handlers, m := newNoteHandlers(t)
	sess := testUserSession()

	m.profile.EXPECT().PhotoURL(gomock.Any(), sess.UserID).Return("", nil)
	expectMutateNotes(m.repo, model.NoteList{{Text: "Earlier note", Contributor: sess.DisplayName}})

	req := noteRequestWith(t, http.MethodPost, "/api/books/book-1/notes", "Another one", "")
	w := httptest.NewRecorder()

	handlers.Create(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already added a note")
}

func TestNoteHandlers_Create_EmptyText(t *testing.T) {
	handlers, _ := newNoteHandlers(t)

	req := noteRequestWith(t, http.MethodPost, "/api/books/book-1/notes", "   ", "")
	w := httptest.NewRecorder()

	handlers.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"text"`)
}

func TestNoteHandlers_Update(t *testing.T) {
	handlers, m := newNoteHandlers(t)
	sess := testUserSession()

	saved := expectMutateNotes(m.repo, model.NoteList{
		{Text: "Old text", Contributor: sess.DisplayName, ImageURL: "https://photos.example.com/u1.jpg"},
	})

	req := noteRequestWith(t, http.MethodPut, "/api/books/book-1/notes/0", "New text", "0")
	w := httptest.NewRecorder()

	handlers.Update(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "New text")
	require.Len(t, *saved, 1)
	assert.Equal(t, "https://photos.example.com/u1.jpg", (*saved)[0].ImageURL)
}

func TestNoteHandlers_Update_OtherContributor(t *testing.T) {
	handlers, m := newNoteHandlers(t)

	expectMutateNotes(m.repo, model.NoteList{{Text: "Not yours", Contributor: "Someone Else"}})

	req := noteRequestWith(t, http.MethodPut, "/api/books/book-1/notes/0", "Hijacked", "0")
	w := httptest.NewRecorder()

	handlers.Update(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestNoteHandlers_Update_IndexOutOfRange(t *testing.T) {
	handlers, m := newNoteHandlers(t)

	expectMutateNotes(m.repo, model.NoteList{})

	req := noteRequestWith(t, http.MethodPut, "/api/books/book-1/notes/5", "Text", "5")
	w := httptest.NewRecorder()

	handlers.Update(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNoteHandlers_Update_BadIndex(t *testing.T) {
	handlers, _ := newNoteHandlers(t)

	req := noteRequestWith(t, http.MethodPut, "/api/books/book-1/notes/first", "Text", "first")
	w := httptest.NewRecorder()

	handlers.Update(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "integer")
}

func TestNoteHandlers_Delete(t *testing.T) {
	handlers, m := newNoteHandlers(t)
	sess := testUserSession()

	saved := expectMutateNotes(m.repo, model.NoteList{
		{Text: "Keep", Contributor: "Someone Else"},
		{Text: "Remove", Contributor: sess.DisplayName},
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/books/book-1/notes/1", nil)
	req.SetPathValue("id", "book-1")
	req.SetPathValue("index", "1")
	req = withSession(req, sess)
	w := httptest.NewRecorder()

	handlers.Delete(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "deleted")
	require.Len(t, *saved, 1)
	assert.Equal(t, "Someone Else", (*saved)[0].Contributor)
}
