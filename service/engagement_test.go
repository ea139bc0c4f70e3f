package service

import (
	"Gallery/pkg/response"
	"Gallery/types"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLikeInvolution(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createTestUser(t, "alice")
	bob := env.createTestUser(t, "bob")
	image := env.uploadImage(t, alice.ID, "Sunset", nil)

	ctx := context.Background()

	first, err := env.Engagement.ToggleLike(ctx, image.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, first.Liked)
	assert.Equal(t, int64(1), first.LikesCount)

	// 再点一次取消
	second, err := env.Engagement.ToggleLike(ctx, image.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, second.Liked)
	assert.Equal(t, int64(0), second.LikesCount)

	// 第三次回到点赞态
	third, err := env.Engagement.ToggleLike(ctx, image.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, third.Liked)
	assert.Equal(t, int64(1), third.LikesCount)
}

func TestToggleLikeCountsPerUser(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createTestUser(t, "alice")
	bob := env.createTestUser(t, "bob")
	carol := env.createTestUser(t, "carol")
	image := env.uploadImage(t, alice.ID, "Sunset", nil)

	ctx := context.Background()
	_, err := env.Engagement.ToggleLike(ctx, image.ID, bob.ID)
	require.NoError(t, err)
	resp, err := env.Engagement.ToggleLike(ctx, image.ID, carol.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.LikesCount)
}

func TestToggleLikeMissingImage(t *testing.T) {
	env := newTestEnv(t)
	bob := env.createTestUser(t, "bob")

	_, err := env.Engagement.ToggleLike(context.Background(), 12345, bob.ID)
	var biz *response.BizError
	require.ErrorAs(t, err, &biz)
	assert.Equal(t, 404, biz.Code)

	_, err = env.Engagement.ToggleLikeBySlug(context.Background(), "no-such-slug", bob.ID)
	require.ErrorAs(t, err, &biz)
	assert.Equal(t, 404, biz.Code)
}

func TestRecordViewDedup(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createTestUser(t, "alice")
	bob := env.createTestUser(t, "bob")
	image := env.uploadImage(t, alice.ID, "Sunset", nil)

	ctx := context.Background()

	// 同一登录用户只记一次
	require.NoError(t, env.Engagement.RecordView(ctx, image.ID, bob.ID, ""))
	require.NoError(t, env.Engagement.RecordView(ctx, image.ID, bob.ID, ""))
	// 同一匿名 IP 只记一次
	require.NoError(t, env.Engagement.RecordView(ctx, image.ID, 0, "203.0.113.7"))
	require.NoError(t, env.Engagement.RecordView(ctx, image.ID, 0, "203.0.113.7"))
	// 另一个 IP 是新的一次
	require.NoError(t, env.Engagement.RecordView(ctx, image.ID, 0, "203.0.113.8"))
	// 身份完全缺失时忽略
	require.NoError(t, env.Engagement.RecordView(ctx, image.ID, 0, ""))

	count, err := env.Engagement.ViewDAO.CountByImage(ctx, image.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestGetEngagementAggregates(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createTestUser(t, "alice")
	bob := env.createTestUser(t, "bob")
	image := env.uploadImage(t, alice.ID, "Sunset", nil)

	ctx := context.Background()
	_, err := env.Engagement.ToggleLike(ctx, image.ID, bob.ID)
	require.NoError(t, err)
	require.NoError(t, env.Engagement.RecordView(ctx, image.ID, bob.ID, ""))
	_, err = env.Comments.AddComment(ctx, image.Slug, bob.ID, &types.CreateCommentRequest{Content: "nice"})
	require.NoError(t, err)

	// bob 视角
	engagement, err := env.Engagement.GetEngagement(ctx, image.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), engagement.LikesCount)
	assert.Equal(t, int64(1), engagement.ViewsCount)
	assert.Equal(t, int64(1), engagement.CommentsCount)
	assert.True(t, engagement.IsLiked)

	// 匿名视角 is_liked 恒为 false
	engagement, err = env.Engagement.GetEngagement(ctx, image.ID, 0)
	require.NoError(t, err)
	assert.False(t, engagement.IsLiked)
}
