package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/meridianlaw/cms/internal/models"
)

func (s *Store) ListAdmins(ctx context.Context) ([]models.AdminAccount, error) {
	s.admins.mu.Lock()
	defer s.admins.mu.Unlock()

	return readAll[models.AdminAccount](s.admins.path)
}

func (s *Store) GetAdmin(ctx context.Context, id string) (*models.AdminAccount, error) {
	recs, err := s.ListAdmins(ctx)
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

func (s *Store) GetAdminByEmail(ctx context.Context, email string) (*models.AdminAccount, error) {
	recs, err := s.ListAdmins(ctx)
	if err != nil {
		return nil, err
	}
	for i := range recs {
		if recs[i].Email == email {
			return &recs[i], nil
		}
	}

	return nil, nil
}

func (s *Store) CreateAdmin(ctx context.Context, a *models.AdminAccount) (*models.AdminAccount, error) {
	s.admins.mu.Lock()
	defer s.admins.mu.Unlock()

	recs, err := readAll[models.AdminAccount](s.admins.path)
	if err != nil {
		return nil, err
	}

	rec := *a
	rec.ID = s.nextID()
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	recs = append(recs, rec)
	if err := writeAll(s.admins.path, recs); err != nil {
		return nil, err
	}

	return &rec, nil
}

func (s *Store) UpdateAdmin(ctx context.Context, id string, p models.AdminPatch) (*models.AdminAccount, error) {
	s.admins.mu.Lock()
	defer s.admins.mu.Unlock()

	recs, err := readAll[models.AdminAccount](s.admins.path)
	if err != nil {
		return nil, err
	}

	for i := range recs {
		if recs[i].ID != id {
			continue
		}
		rec := &recs[i]
		if p.Email != nil {
			rec.Email = *p.Email
		}
		if p.Name != nil {
			rec.Name = *p.Name
		}
		if p.PasswordHash != nil {
			rec.PasswordHash = *p.PasswordHash
		}
		rec.UpdatedAt = stampAfter(rec.UpdatedAt)

		if err := writeAll(s.admins.path, recs); err != nil {
			return nil, err
		}
		out := *rec

		return &out, nil
	}

	return nil, nil
}

func (s *Store) DeleteAdmin(ctx context.Context, id string) (bool, error) {
	s.admins.mu.Lock()
	defer s.admins.mu.Unlock()

	recs, err := readAll[models.AdminAccount](s.admins.path)
	if err != nil {
		return false, err
	}

	for i := range recs {
		if recs[i].ID == id {
			recs = append(recs[:i], recs[i+1:]...)

			return true, writeAll(s.admins.path, recs)
		}
	}

	return false, nil
}

// EnsureAdmin seeds the admin collection with one account on first run. The
// hash comes from the caller so this package stays free of crypto concerns.
func (s *Store) EnsureAdmin(ctx context.Context, email, passwordHash, name string) error {
	recs, err := s.ListAdmins(ctx)
	if err != nil {
		return err
	}
	if len(recs) > 0 {
		return nil
	}

	if _, err := s.CreateAdmin(ctx, &models.AdminAccount{
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
	}); err != nil {
		return err
	}
	s.logger.Warn("seeded default admin account, rotate its password",
		slog.String("email", email))

	return nil
}
