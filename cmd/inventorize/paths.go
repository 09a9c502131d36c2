package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	inventorize "github.com/mattkeenan/inventorize/pkg"
)

var errInventoryInsideRepository = errors.New("inventory must be located outside the repository")

// resolveInventoryPath makes the inventory path absolute with a canonical
// parent directory. The file itself need not exist.
func resolveInventoryPath(path string) (string, error) {
	if path == "" {
		return "", errors.New("an inventory path is required (--inventory or INVENTORIZE_INVENTORY)")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid inventory path %s: %w", path, err)
	}

	name := filepath.Base(abs)
	if name == string(filepath.Separator) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid inventory path %s", path)
	}

	parent, err := filepath.EvalSymlinks(filepath.Dir(abs))
	if err != nil {
		return "", fmt.Errorf("inventory directory: %w", err)
	}
	info, err := os.Stat(parent)
	if err != nil {
		return "", fmt.Errorf("inventory directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("inventory directory %s is not a directory", parent)
	}

	full := filepath.Join(parent, name)
	if info, err := os.Stat(full); err == nil && info.IsDir() {
		return "", fmt.Errorf("inventory path %s is a directory", full)
	}
	return full, nil
}

// resolveRepositoryPath canonicalizes the repository, which must be an existing directory
func resolveRepositoryPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid repository path %s: %w", path, err)
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("repository: %w", err)
	}
	info, err := os.Stat(canonical)
	if err != nil {
		return "", fmt.Errorf("repository: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("repository %s is not a directory", canonical)
	}
	return canonical, nil
}

// checkInventoryOutside rejects an inventory stored inside the repository it describes
func checkInventoryOutside(inventory, repository string) error {
	if inventorize.IsPathUnder(inventory, repository) {
		return fmt.Errorf("%w: %s is inside %s", errInventoryInsideRepository, inventory, repository)
	}
	return nil
}
