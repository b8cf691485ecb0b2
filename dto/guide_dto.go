package dto

type CreateGuideDTO struct {
	Title    string `json:"title" binding:"required,max=200"`
	Content  string `json:"content" binding:"required"`
	Project  string `json:"project" binding:"required"`
	Status   string `json:"status" binding:"omitempty,oneof=draft published"`
	ReadTime int    `json:"readTime" binding:"omitempty,gte=1"`
}

type UpdateGuideDTO struct {
	Title    *string `json:"title,omitempty" binding:"omitempty,max=200"`
	Content  *string `json:"content,omitempty"`
	Project  *string `json:"project,omitempty"`
	Status   *string `json:"status,omitempty" binding:"omitempty,oneof=draft published"`
	ReadTime *int    `json:"readTime,omitempty" binding:"omitempty,gte=1"`
}
