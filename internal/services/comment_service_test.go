package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travelog/internal/models"
	"travelog/internal/security"
	"travelog/internal/validators"
)

type commentFixture struct {
	service     CommentService
	commentRepo *fakeCommentRepo
	postRepo    *fakePostRepo
	audit       *fakeAudit
	post        *models.Post
}

func newCommentFixture(t *testing.T) *commentFixture {
	t.Helper()

	commentRepo := newFakeCommentRepo()
	postRepo := newFakePostRepo(commentRepo)
	audit := &fakeAudit{}

	post := postRepo.add(&models.Post{
		Title:       "Harbor walk",
		AuthorID:    primitive.NewObjectID(),
		IsPublished: true,
	})

	return &commentFixture{
		service:     NewCommentService(commentRepo, postRepo, audit, testLogger()),
		commentRepo: commentRepo,
		postRepo:    postRepo,
		audit:       audit,
		post:        post,
	}
}

func TestCreateCommentSanitizesContent(t *testing.T) {
	f := newCommentFixture(t)
	caller := security.Principal{ID: primitive.NewObjectID(), Role: models.RoleUser}

	comment, err := f.service.Create(context.Background(), caller, &validators.CreateCommentRequest{
		PostID:  f.post.ID.Hex(),
		Content: "<script>alert(1)</script>lovely spot",
	})
	require.NoError(t, err)
	assert.Equal(t, "lovely spot", comment.Content)
	assert.False(t, comment.IsHidden)
}

func TestCreateCommentMarkupOnlyContentRejected(t *testing.T) {
	f := newCommentFixture(t)
	caller := security.Principal{ID: primitive.NewObjectID(), Role: models.RoleUser}

	_, err := f.service.Create(context.Background(), caller, &validators.CreateCommentRequest{
		PostID:  f.post.ID.Hex(),
		Content: "<script>alert(1)</script>",
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr, "content that sanitizes to empty is invalid")
}

func TestCreateCommentUnknownPost(t *testing.T) {
	f := newCommentFixture(t)
	caller := security.Principal{ID: primitive.NewObjectID(), Role: models.RoleUser}

	_, err := f.service.Create(context.Background(), caller, &validators.CreateCommentRequest{
		PostID:  primitive.NewObjectID().Hex(),
		Content: "anyone here?",
	})

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestUpdateCommentOwnershipPolicy(t *testing.T) {
	f := newCommentFixture(t)
	authorID := primitive.NewObjectID()
	comment := f.commentRepo.add(&models.Comment{PostID: f.post.ID, AuthorID: authorID, Content: "original"})

	stranger := security.Principal{ID: primitive.NewObjectID(), Role: models.RoleUser}
	_, err := f.service.Update(context.Background(), stranger, comment.ID.Hex(), "192.0.2.1", &validators.UpdateCommentRequest{Content: "hijacked"})
	var authzErr *AuthorizationError
	require.ErrorAs(t, err, &authzErr)
	assert.Len(t, f.audit.denied, 1)

	editor := security.Principal{ID: primitive.NewObjectID(), Role: models.RoleEditor}
	updated, err := f.service.Update(context.Background(), editor, comment.ID.Hex(), "192.0.2.1", &validators.UpdateCommentRequest{Content: "moderated"})
	require.NoError(t, err)
	assert.Equal(t, "moderated", updated.Content)
}

func TestToggleHiddenIsModeratorOnly(t *testing.T) {
	f := newCommentFixture(t)
	authorID := primitive.NewObjectID()
	comment := f.commentRepo.add(&models.Comment{PostID: f.post.ID, AuthorID: authorID, Content: "spam?"})

	// Even the comment's own author cannot moderate it.
	owner := security.Principal{ID: authorID, Role: models.RoleUser}
	_, err := f.service.ToggleHidden(context.Background(), owner, comment.ID.Hex(), "192.0.2.1")
	var authzErr *AuthorizationError
	require.ErrorAs(t, err, &authzErr)

	editor := security.Principal{ID: primitive.NewObjectID(), Role: models.RoleEditor}
	hidden, err := f.service.ToggleHidden(context.Background(), editor, comment.ID.Hex(), "192.0.2.1")
	require.NoError(t, err)
	assert.True(t, hidden.IsHidden)

	unhidden, err := f.service.ToggleHidden(context.Background(), editor, comment.ID.Hex(), "192.0.2.1")
	require.NoError(t, err)
	assert.False(t, unhidden.IsHidden)
}

func TestDeleteCommentAllowsEditor(t *testing.T) {
	f := newCommentFixture(t)
	comment := f.commentRepo.add(&models.Comment{PostID: f.post.ID, AuthorID: primitive.NewObjectID(), Content: "bye"})

	editor := security.Principal{ID: primitive.NewObjectID(), Role: models.RoleEditor}
	require.NoError(t, f.service.Delete(context.Background(), editor, comment.ID.Hex(), "192.0.2.1"))
	assert.Empty(t, f.commentRepo.comments)
}

func TestListByPostFiltersHidden(t *testing.T) {
	f := newCommentFixture(t)
	f.commentRepo.add(&models.Comment{PostID: f.post.ID, Content: "shown"})
	f.commentRepo.add(&models.Comment{PostID: f.post.ID, Content: "hidden", IsHidden: true})

	comments, err := f.service.ListByPost(context.Background(), f.post.ID.Hex(), nil)
	require.NoError(t, err)
	assert.Len(t, comments, 1)

	admin := security.Principal{ID: primitive.NewObjectID(), Role: models.RoleAdmin}
	comments, err = f.service.ListByPost(context.Background(), f.post.ID.Hex(), &admin)
	require.NoError(t, err)
	assert.Len(t, comments, 2)
}
