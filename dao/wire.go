package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewAuthorProfile,
	NewCategory,
	NewTag,
	NewImage,
	NewImageLike,
	NewImageView,
	NewComment,
)
