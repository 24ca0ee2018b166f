package models

// Patch types carry partial updates. Nil pointer means "leave the field
// alone"; a non-nil pointer to the zero value is an explicit overwrite.

type AttorneyPatch struct {
	Name          *string   `json:"name,omitempty"`
	Title         *string   `json:"title,omitempty"`
	Specialty     *string   `json:"specialty,omitempty"`
	Education     *[]string `json:"education,omitempty"`
	Experience    *string   `json:"experience,omitempty"`
	Email         *string   `json:"email,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	ProfileURL    *string   `json:"profileUrl,omitempty"`
	Photo         *string   `json:"photo,omitempty"`
	Bio           *string   `json:"bio,omitempty"`
	PracticeAreas *[]string `json:"practiceAreas,omitempty"`
	BarAdmissions *[]string `json:"barAdmissions,omitempty"`
	Languages     *[]string `json:"languages,omitempty"`
	Status        *string   `json:"status,omitempty"`
	Order         *int      `json:"order,omitempty"`
}

type BlogPostPatch struct {
	Title     *string `json:"title,omitempty"`
	Excerpt   *string `json:"excerpt,omitempty"`
	Content   *string `json:"content,omitempty"`
	Thumbnail *string `json:"thumbnail,omitempty"`
	Category  *string `json:"category,omitempty"`
	Author    *string `json:"author,omitempty"`
	Status    *string `json:"status,omitempty"`
}

type PracticeAreaPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Content     *string `json:"content,omitempty"`
	Image       *string `json:"image,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Status      *string `json:"status,omitempty"`
	Order       *int    `json:"order,omitempty"`
}

type ServicePatch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Content     *string   `json:"content,omitempty"`
	Image       *string   `json:"image,omitempty"`
	Icon        *string   `json:"icon,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Features    *[]string `json:"features,omitempty"`
	Status      *string   `json:"status,omitempty"`
	Order       *int      `json:"order,omitempty"`
}

type ContactPatch struct {
	Status *string `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

type AdminPatch struct {
	Email        *string `json:"email,omitempty"`
	Name         *string `json:"name,omitempty"`
	PasswordHash *string `json:"-"`
}
