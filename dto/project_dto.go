package dto

type CreateProjectDTO struct {
	Title            string   `json:"title" binding:"required,max=200"`
	Description      string   `json:"description" binding:"required"`
	ShortDescription string   `json:"shortDescription" binding:"required,max=300"`
	Technologies     []string `json:"technologies"`
	Image            string   `json:"image"`
	GithubURL        string   `json:"githubUrl" binding:"omitempty,url"`
	LiveURL          string   `json:"liveUrl" binding:"omitempty,url"`
	Featured         bool     `json:"featured"`
	Status           string   `json:"status" binding:"omitempty,oneof=draft published"`
	Order            int      `json:"order"`
}

// UpdateProjectDTO: all fields are optional pointers
type UpdateProjectDTO struct {
	Title            *string   `json:"title,omitempty" binding:"omitempty,max=200"`
	Description      *string   `json:"description,omitempty"`
	ShortDescription *string   `json:"shortDescription,omitempty" binding:"omitempty,max=300"`
	Technologies     *[]string `json:"technologies,omitempty"`
	Image            *string   `json:"image,omitempty"`
	GithubURL        *string   `json:"githubUrl,omitempty" binding:"omitempty,url"`
	LiveURL          *string   `json:"liveUrl,omitempty" binding:"omitempty,url"`
	Featured         *bool     `json:"featured,omitempty"`
	Status           *string   `json:"status,omitempty" binding:"omitempty,oneof=draft published"`
	Order            *int      `json:"order,omitempty"`
}
