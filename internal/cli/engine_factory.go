package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/stategate"
	"github.com/aretw0/stategate/pkg/observability"
)

// definitionNames are the file names looked up when a directory is given.
var definitionNames = []string{"stategate.yaml", "stategate.yml", "stategate.json"}

// createEngine loads a stategate engine with standard CLI conventions.
func createEngine(path string, logger *slog.Logger, metrics *observability.Metrics) (*stategate.Engine, error) {
	engineOpts := []stategate.Option{stategate.WithLogger(logger)}
	if metrics != nil {
		engineOpts = append(engineOpts, stategate.WithMetrics(metrics))
	}

	resolved, err := resolveDefinitions(path)
	if err != nil {
		return nil, err
	}

	eng := stategate.New(engineOpts...)
	if err := eng.LoadFile(resolved); err != nil {
		return nil, fmt.Errorf("error loading definitions: %w", err)
	}
	return eng, nil
}

// resolveDefinitions accepts either a definition file or a directory holding
// one of the conventional definition files.
func resolveDefinitions(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("definitions not found: %w", err)
	}
	if !info.IsDir() {
		return path, nil
	}
	for _, name := range definitionNames {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no definition file (%v) in %s", definitionNames, path)
}
