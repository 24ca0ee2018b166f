// Command backup copies every collection file plus the audit database into a
// timestamped directory next to the data dir.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/meridianlaw/cms/internal/config"
)

func main() {
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	dst := cfg.DataDir + "-backup-" + time.Now().UTC().Format("20060102T150405Z")
	if err := os.MkdirAll(dst, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Backup error: %v\n", err)
		os.Exit(1)
	}

	entries, err := os.ReadDir(cfg.DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Backup error: %v\n", err)
		os.Exit(1)
	}

	copied := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		src := filepath.Join(cfg.DataDir, e.Name())
		if err := copyFile(src, filepath.Join(dst, e.Name())); err != nil {
			fmt.Fprintf(os.Stderr, "Backup error: %v\n", err)
			os.Exit(1)
		}
		copied++
	}

	if _, err := os.Stat(cfg.AuditDBPath); err == nil {
		if err := copyFile(cfg.AuditDBPath, filepath.Join(dst, filepath.Base(cfg.AuditDBPath))); err != nil {
			fmt.Fprintf(os.Stderr, "Backup error: %v\n", err)
			os.Exit(1)
		}
		copied++
	}

	fmt.Printf("Backup completed: %d files copied to %s\n", copied, dst)
}

func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return err
	}

	return dstFile.Close()
}
