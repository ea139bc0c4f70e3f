package types

// CreateCategoryRequest 新建分类，slug 缺省时由名称生成
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=50"`
	Slug string `json:"slug" binding:"max=80"`
}

// CreateTagRequest 新建标签，挂在某个分类下
type CreateTagRequest struct {
	Name       string `json:"name" binding:"required,max=50"`
	CategoryID int64  `json:"category_id" binding:"required"`
}
