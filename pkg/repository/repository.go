// Package repository declares the persistence contracts consumed by the HTTP
// layer. internal/store implements the entity repos over flat JSON files;
// internal/audit implements AuditRepo over sqlite.
package repository

import (
	"context"

	"github.com/meridianlaw/cms/internal/models"
)

// Lookup methods return (nil, nil) when no record matches; callers treat
// that as not-found, never as an error.

type AttorneyRepo interface {
	ListAttorneys(ctx context.Context) ([]models.Attorney, error)
	ActiveAttorneys(ctx context.Context) ([]models.Attorney, error)
	GetAttorney(ctx context.Context, id string) (*models.Attorney, error)
	GetAttorneyBySlug(ctx context.Context, slug string) (*models.Attorney, error)
	CreateAttorney(ctx context.Context, a *models.Attorney) (*models.Attorney, error)
	UpdateAttorney(ctx context.Context, id string, p models.AttorneyPatch) (*models.Attorney, error)
	DeleteAttorney(ctx context.Context, id string) (bool, error)
}

type BlogRepo interface {
	ListBlogPosts(ctx context.Context) ([]models.BlogPost, error)
	PublishedBlogPosts(ctx context.Context) ([]models.BlogPost, error)
	GetBlogPost(ctx context.Context, id string) (*models.BlogPost, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	CreateBlogPost(ctx context.Context, b *models.BlogPost) (*models.BlogPost, error)
	UpdateBlogPost(ctx context.Context, id string, p models.BlogPostPatch) (*models.BlogPost, error)
	DeleteBlogPost(ctx context.Context, id string) (bool, error)
}

type PracticeAreaRepo interface {
	ListPracticeAreas(ctx context.Context) ([]models.PracticeArea, error)
	ActivePracticeAreas(ctx context.Context) ([]models.PracticeArea, error)
	GetPracticeArea(ctx context.Context, id string) (*models.PracticeArea, error)
	GetPracticeAreaBySlug(ctx context.Context, slug string) (*models.PracticeArea, error)
	CreatePracticeArea(ctx context.Context, a *models.PracticeArea) (*models.PracticeArea, error)
	UpdatePracticeArea(ctx context.Context, id string, p models.PracticeAreaPatch) (*models.PracticeArea, error)
	DeletePracticeArea(ctx context.Context, id string) (bool, error)
}

type ServiceRepo interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	ActiveServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	GetServiceBySlug(ctx context.Context, slug string) (*models.Service, error)
	CreateService(ctx context.Context, sv *models.Service) (*models.Service, error)
	UpdateService(ctx context.Context, id string, p models.ServicePatch) (*models.Service, error)
	DeleteService(ctx context.Context, id string) (bool, error)
}

type ContactRepo interface {
	ListContacts(ctx context.Context) ([]models.ContactSubmission, error)
	GetContact(ctx context.Context, id string) (*models.ContactSubmission, error)
	CreateContact(ctx context.Context, c *models.ContactSubmission) (*models.ContactSubmission, error)
	UpdateContact(ctx context.Context, id string, p models.ContactPatch) (*models.ContactSubmission, error)
	DeleteContact(ctx context.Context, id string) (bool, error)
}

type AdminRepo interface {
	ListAdmins(ctx context.Context) ([]models.AdminAccount, error)
	GetAdmin(ctx context.Context, id string) (*models.AdminAccount, error)
	GetAdminByEmail(ctx context.Context, email string) (*models.AdminAccount, error)
	CreateAdmin(ctx context.Context, a *models.AdminAccount) (*models.AdminAccount, error)
	UpdateAdmin(ctx context.Context, id string, p models.AdminPatch) (*models.AdminAccount, error)
	DeleteAdmin(ctx context.Context, id string) (bool, error)
}

type AuditRepo interface {
	Record(ctx context.Context, actor, action, entityType, entityID string) error
	ListAudit(ctx context.Context, limit, offset int) ([]models.AuditEntry, error)
}
