// Command seed_admin provisions a new admin account or rotates the password
// of an existing one. Run it after first deployment to replace the default
// credentials.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/meridianlaw/cms/internal/auth"
	"github.com/meridianlaw/cms/internal/config"
	"github.com/meridianlaw/cms/internal/models"
	"github.com/meridianlaw/cms/internal/store"
)

func main() {
	var (
		email    = flag.String("email", "", "Admin email (required)")
		password = flag.String("password", "", "Admin password (required)")
		name     = flag.String("name", "", "Display name for new accounts")
	)
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: seed_admin -email <email> -password <password> [-name <name>]")
		os.Exit(2)
	}

	ctx := context.Background()
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	st, err := store.Open(cfg.DataDir, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Store error: %v\n", err)
		os.Exit(1)
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hash error: %v\n", err)
		os.Exit(1)
	}

	existing, err := st.GetAdminByEmail(ctx, *email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Lookup error: %v\n", err)
		os.Exit(1)
	}

	if existing != nil {
		p := models.AdminPatch{PasswordHash: &hash}
		if *name != "" {
			p.Name = name
		}
		if _, err := st.UpdateAdmin(ctx, existing.ID, p); err != nil {
			fmt.Fprintf(os.Stderr, "Update error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Rotated password for %s\n", *email)
		return
	}

	if _, err := st.CreateAdmin(ctx, &models.AdminAccount{
		Email:        *email,
		PasswordHash: hash,
		Name:         *name,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Create error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Created admin account %s\n", *email)
}
