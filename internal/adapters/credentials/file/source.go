package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/remedy/internal/ports"
)

// Source reads one password per file below root. A reference is a relative
// path; trailing newlines are dropped.
type Source struct {
	root string
}

var _ ports.CredentialSource = (*Source)(nil)

func NewSource(root string) *Source {
	return &Source{root: filepath.Clean(root)}
}

func (s *Source) Lookup(ctx context.Context, ref string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := s.pathForRef(ref)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("credential file %q not found: %w", ref, err)
		}
		return "", fmt.Errorf("read credential file %q: %w", ref, err)
	}

	return strings.TrimRight(string(data), "\r\n"), nil
}

func (s *Source) pathForRef(ref string) (string, error) {
	trimmed := strings.TrimSpace(ref)
	if trimmed == "" {
		return "", errors.New("credential reference is empty")
	}

	cleaned := filepath.Clean(trimmed)
	if filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") || cleaned == "." {
		return "", fmt.Errorf("invalid credential reference %q", ref)
	}

	return filepath.Join(s.root, cleaned), nil
}
