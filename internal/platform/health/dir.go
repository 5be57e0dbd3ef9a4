package health

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jsamuelsen11/greeter/internal/ports"
)

var _ ports.HealthChecker = (*DirChecker)(nil)

// DirChecker reports whether a directory exists and can be listed. It backs
// the readiness check for the static asset mount.
type DirChecker struct {
	name string
	path string
}

// NewDirChecker creates a checker named name for the directory at path.
func NewDirChecker(name, path string) *DirChecker {
	return &DirChecker{name: name, path: path}
}

// Name returns the checker's registry name.
func (c *DirChecker) Name() string {
	return c.name
}

// HealthCheck stats and opens the directory. It returns ctx.Err() if the
// context is already done.
func (c *DirChecker) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("directory %s does not exist", c.path)
		}
		return fmt.Errorf("stat %s: %w", c.path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", c.path)
	}

	f, err := os.Open(c.path)
	if err != nil {
		return fmt.Errorf("open %s: %w", c.path, err)
	}
	return f.Close()
}
