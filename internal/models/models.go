package models

import "time"

// Status values for attorneys, practice areas and services.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Status values for blog posts.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Status values for contact submissions.
const (
	ContactNew       = "new"
	ContactRead      = "read"
	ContactResponded = "responded"
)

func ValidContentStatus(s string) bool {
	return s == StatusActive || s == StatusInactive
}

func ValidBlogStatus(s string) bool {
	return s == StatusDraft || s == StatusPublished
}

func ValidContactStatus(s string) bool {
	return s == ContactNew || s == ContactRead || s == ContactResponded
}

type Attorney struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Specialty     string    `json:"specialty"`
	Education     []string  `json:"education"`
	Experience    string    `json:"experience"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	ProfileURL    string    `json:"profileUrl,omitempty"`
	Photo         string    `json:"photo"`
	Bio           string    `json:"bio"`
	PracticeAreas []string  `json:"practiceAreas"`
	BarAdmissions []string  `json:"barAdmissions"`
	Languages     []string  `json:"languages"`
	Status        string    `json:"status"`
	Order         int       `json:"order"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type BlogPost struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	Thumbnail   string     `json:"thumbnail"`
	Category    string     `json:"category"`
	Author      string     `json:"author"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	ReadTime    string     `json:"readTime"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type PracticeArea struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Image       string    `json:"image"`
	Icon        string    `json:"icon,omitempty"`
	Status      string    `json:"status"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Service struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Image       string    `json:"image"`
	Icon        string    `json:"icon,omitempty"`
	Category    string    `json:"category"`
	Features    []string  `json:"features"`
	Status      string    `json:"status"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ContactSubmission struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	InquiryType string    `json:"inquiryType"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AdminAccount is persisted with its hash; it never crosses the HTTP
// boundary directly (handlers return id/email/name only).
type AdminAccount struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AuditEntry is one recorded admin mutation.
type AuditEntry struct {
	ID         int64  `json:"id"`
	Actor      string `json:"actor"`
	Action     string `json:"action"`
	EntityType string `json:"entityType"`
	EntityID   string `json:"entityId"`
	Created    int64  `json:"created"`
}
