package store

import (
	"context"
	"sort"
	"time"

	"github.com/meridianlaw/cms/internal/models"
)

func (s *Store) ListBlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	s.blogs.mu.Lock()
	defer s.blogs.mu.Unlock()

	return readAll[models.BlogPost](s.blogs.path)
}

// PublishedBlogPosts returns published posts, newest first.
func (s *Store) PublishedBlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	recs, err := s.ListBlogPosts(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.BlogPost, 0, len(recs))
	for _, b := range recs {
		if b.Status == models.StatusPublished {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return publishedTime(out[i]).After(publishedTime(out[j]))
	})

	return out, nil
}

func publishedTime(b models.BlogPost) time.Time {
	if b.PublishedAt != nil {
		return *b.PublishedAt
	}

	return b.CreatedAt
}

func (s *Store) GetBlogPost(ctx context.Context, id string) (*models.BlogPost, error) {
	recs, err := s.ListBlogPosts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range recs {
		if recs[i].ID == id {
			return &recs[i], nil
		}
	}

	return nil, nil
}

func (s *Store) GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	recs, err := s.ListBlogPosts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range recs {
		if recs[i].Slug == slug {
			return &recs[i], nil
		}
	}

	return nil, nil
}

func (s *Store) CreateBlogPost(ctx context.Context, b *models.BlogPost) (*models.BlogPost, error) {
	s.blogs.mu.Lock()
	defer s.blogs.mu.Unlock()

	recs, err := readAll[models.BlogPost](s.blogs.path)
	if err != nil {
		return nil, err
	}

	rec := *b
	rec.ID = s.nextID()
	if rec.Slug == "" {
		rec.Slug = models.Slugify(rec.Title)
	}
	if rec.Status == "" {
		rec.Status = models.StatusDraft
	}
	rec.ReadTime = models.ReadTime(rec.Content)
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	if rec.Status == models.StatusPublished {
		rec.PublishedAt = &now
	}

	recs = append(recs, rec)
	if err := writeAll(s.blogs.path, recs); err != nil {
		return nil, err
	}

	return &rec, nil
}

func (s *Store) UpdateBlogPost(ctx context.Context, id string, p models.BlogPostPatch) (*models.BlogPost, error) {
	s.blogs.mu.Lock()
	defer s.blogs.mu.Unlock()

	recs, err := readAll[models.BlogPost](s.blogs.path)
	if err != nil {
		return nil, err
	}

	for i := range recs {
		if recs[i].ID != id {
			continue
		}
		rec := &recs[i]
		if p.Title != nil {
			rec.Title = *p.Title
			rec.Slug = models.Slugify(*p.Title)
		}
		if p.Excerpt != nil {
			rec.Excerpt = *p.Excerpt
		}
		if p.Content != nil {
			rec.Content = *p.Content
			rec.ReadTime = models.ReadTime(*p.Content)
		}
		if p.Thumbnail != nil {
			rec.Thumbnail = *p.Thumbnail
		}
		if p.Category != nil {
			rec.Category = *p.Category
		}
		if p.Author != nil {
			rec.Author = *p.Author
		}
		if p.Status != nil {
			rec.Status = *p.Status
			// publishedAt is set on the first transition into published
			// and never touched again
			if *p.Status == models.StatusPublished && rec.PublishedAt == nil {
				now := time.Now().UTC()
				rec.PublishedAt = &now
			}
		}
		rec.UpdatedAt = stampAfter(rec.UpdatedAt)

		if err := writeAll(s.blogs.path, recs); err != nil {
			return nil, err
		}
		out := *rec

		return &out, nil
	}

	return nil, nil
}

func (s *Store) DeleteBlogPost(ctx context.Context, id string) (bool, error) {
	s.blogs.mu.Lock()
	defer s.blogs.mu.Unlock()

	recs, err := readAll[models.BlogPost](s.blogs.path)
	if err != nil {
		return false, err
	}

	for i := range recs {
		if recs[i].ID == id {
			recs = append(recs[:i], recs[i+1:]...)

			return true, writeAll(s.blogs.path, recs)
		}
	}

	return false, nil
}
