package dto

type CreateBlogDTO struct {
	Title         string   `json:"title" binding:"required,max=200"`
	Content       string   `json:"content" binding:"required"`
	Excerpt       string   `json:"excerpt" binding:"required,max=500"`
	Tags          []string `json:"tags"`
	Status        string   `json:"status" binding:"omitempty,oneof=draft published"`
	FeaturedImage string   `json:"featuredImage"`
	ReadTime      int      `json:"readTime" binding:"omitempty,gte=1"`
}

type UpdateBlogDTO struct {
	Title         *string   `json:"title,omitempty" binding:"omitempty,max=200"`
	Content       *string   `json:"content,omitempty"`
	Excerpt       *string   `json:"excerpt,omitempty" binding:"omitempty,max=500"`
	Tags          *[]string `json:"tags,omitempty"`
	Status        *string   `json:"status,omitempty" binding:"omitempty,oneof=draft published"`
	FeaturedImage *string   `json:"featuredImage,omitempty"`
	ReadTime      *int      `json:"readTime,omitempty" binding:"omitempty,gte=1"`
}
