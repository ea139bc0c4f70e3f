package server

import (
	"Gallery/handler"
)

type Handlers struct {
	User     *handler.User
	Category *handler.Category
	Image    *handler.Image
	Comment  *handler.Comment
}
