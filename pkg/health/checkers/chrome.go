package checkers

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// ChromeChecker проверяет, что headless Chrome для экспорта PDF доступен.
type ChromeChecker struct {
	path string
}

func NewChromeChecker(path string) *ChromeChecker {
	return &ChromeChecker{path: path}
}

func (c *ChromeChecker) Name() string { return "chrome" }

func (c *ChromeChecker) Check(ctx context.Context) error {
	if c.path != "" {
		if _, err := os.Stat(c.path); err != nil {
			return fmt.Errorf("chrome binary %s: %w", c.path, err)
		}
		return nil
	}
	for _, name := range []string{"google-chrome", "chromium", "chromium-browser"} {
		if _, err := exec.LookPath(name); err == nil {
			return nil
		}
	}
	return fmt.Errorf("no chrome binary found in PATH")
}
