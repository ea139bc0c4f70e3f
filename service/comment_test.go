package service

import (
	"Gallery/pkg/response"
	"Gallery/types"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddComment(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createTestUser(t, "alice")
	bob := env.createTestUser(t, "bob")
	image := env.uploadImage(t, alice.ID, "Sunset", nil)

	ctx := context.Background()
	comment, err := env.Comments.AddComment(ctx, image.Slug, bob.ID,
		&types.CreateCommentRequest{Content: "  great shot  "})
	require.NoError(t, err)
	assert.Equal(t, "great shot", comment.Content)
	assert.Equal(t, "bob", comment.Author)
	assert.Equal(t, image.ID, comment.ImageID)

	// 纯空白内容被拒
	_, err = env.Comments.AddComment(ctx, image.Slug, bob.ID,
		&types.CreateCommentRequest{Content: "   "})
	var biz *response.BizError
	require.ErrorAs(t, err, &biz)
	assert.Equal(t, 400, biz.Code)

	// 图片不存在
	_, err = env.Comments.AddComment(ctx, "no-such-slug", bob.ID,
		&types.CreateCommentRequest{Content: "hi"})
	require.ErrorAs(t, err, &biz)
	assert.Equal(t, 404, biz.Code)
}

func TestListComments(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createTestUser(t, "alice")
	bob := env.createTestUser(t, "bob")
	image := env.uploadImage(t, alice.ID, "Sunset", nil)

	ctx := context.Background()
	for _, content := range []string{"first", "second", "third"} {
		_, err := env.Comments.AddComment(ctx, image.Slug, bob.ID,
			&types.CreateCommentRequest{Content: content})
		require.NoError(t, err)
	}

	comments, err := env.Comments.ListComments(ctx, image.Slug, 1, 20)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	for _, comment := range comments {
		assert.Equal(t, "bob", comment.Author)
	}
}

func TestDeleteCommentOnlyAuthor(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createTestUser(t, "alice")
	bob := env.createTestUser(t, "bob")
	image := env.uploadImage(t, alice.ID, "Sunset", nil)

	ctx := context.Background()
	comment, err := env.Comments.AddComment(ctx, image.Slug, bob.ID,
		&types.CreateCommentRequest{Content: "mine"})
	require.NoError(t, err)

	// 别人删不掉，哪怕是图片作者
	err = env.Comments.DeleteComment(ctx, comment.ID, alice.ID)
	var biz *response.BizError
	require.ErrorAs(t, err, &biz)
	assert.Equal(t, 403, biz.Code)

	require.NoError(t, env.Comments.DeleteComment(ctx, comment.ID, bob.ID))

	err = env.Comments.DeleteComment(ctx, comment.ID, bob.ID)
	require.ErrorAs(t, err, &biz)
	assert.Equal(t, 404, biz.Code)
}
