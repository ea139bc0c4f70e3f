package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(CategoryService), "*"),
	wire.Bind(new(ICategoryService), new(*CategoryService)),

	wire.Struct(new(TagService), "*"),
	wire.Bind(new(ITagService), new(*TagService)),

	wire.Struct(new(ImageService), "*"),
	wire.Bind(new(IImageService), new(*ImageService)),

	wire.Struct(new(EngagementService), "*"),
	wire.Bind(new(IEngagementService), new(*EngagementService)),

	wire.Struct(new(CommentService), "*"),
	wire.Bind(new(ICommentService), new(*CommentService)),
)
