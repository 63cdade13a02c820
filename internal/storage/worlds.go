package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/worldfile"
)

// worldDir serves world files from dataDir/worlds.
type worldDir struct {
	dataDir string
	logger  *slog.Logger
}

func newWorldDir(dataDir string, logger *slog.Logger) worldDir {
	if dataDir == "" {
		dataDir = "./data"
	}
	return worldDir{dataDir: dataDir, logger: logger}
}

func (d worldDir) path() string {
	return filepath.Join(d.dataDir, "worlds")
}

func (d worldDir) ListWorlds(ctx context.Context) ([]WorldInfo, error) {
	var worlds []WorldInfo

	err := filepath.WalkDir(d.path(), func(path string, e fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && path == d.path() {
				return filepath.SkipDir
			}
			return err
		}
		if e.IsDir() || !worldfile.IsWorldFile(path) {
			return nil
		}

		spec, err := worldfile.ReadFile(path, false)
		if err != nil {
			d.logger.Warn("Failed to read world file", "path", path, "error", err)
			return nil
		}

		rel, _ := filepath.Rel(d.path(), path)
		worlds = append(worlds, WorldInfo{
			File:        filepath.ToSlash(rel),
			Title:       spec.Title,
			Description: spec.Description,
			TurnLimit:   spec.TurnLimit,
		})
		return nil
	})
	if err != nil {
		d.logger.Error("Failed to walk worlds directory", "error", err)
		return nil, fmt.Errorf("failed to list worlds: %w", err)
	}

	sort.Slice(worlds, func(i, j int) bool { return worlds[i].File < worlds[j].File })
	return worlds, nil
}

func (d worldDir) GetWorld(ctx context.Context, filename string) (*worldfile.Spec, error) {
	if filename == "" || strings.Contains(filename, "..") || filepath.IsAbs(filename) {
		return nil, fmt.Errorf("invalid world file name: %q", filename)
	}

	spec, err := worldfile.ReadFile(filepath.Join(d.path(), filepath.FromSlash(filename)), false)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrWorldNotFound, filename)
		}
		return nil, fmt.Errorf("failed to load world %s: %w", filename, err)
	}
	return spec, nil
}
