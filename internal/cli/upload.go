package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avolkov/hirelink/internal/models"
)

// Upload puts a resume file on the asset host and prints its public key.
// Candidates only; the command is unavailable when the asset host is not
// configured.
func (a *App) Upload(ctx context.Context, args []string) error {
	if a.identity == nil || a.identity.Class != models.RoleClassCandidate {
		fmt.Fprintln(a.out, "Candidates only.")
		return nil
	}
	if a.uploader == nil {
		fmt.Fprintln(a.out, "Asset host not configured.")
		return nil
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: upload <file>")
		return nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(a.out, "Open failed: %s\n", err)
		return err
	}
	defer f.Close()

	key, err := a.uploader.UploadResume(ctx, a.identity.ID, filepath.Base(args[0]), f)
	if err != nil {
		fmt.Fprintf(a.out, "Upload failed: %s\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Uploaded as %s.\n", key)
	return nil
}
