package app

import (
	"fmt"
	"os"
	"path/filepath"

	"fspaths/internal/config"
	"fspaths/internal/fs"
	"fspaths/internal/paths"
)

// App is the application layer between the CLI and the paths resolver.
// It constructs all dependencies from config and exposes operations that
// accept raw string paths.
type App struct {
	cfg      *config.Config
	resolver *paths.Resolver
	logger   paths.Logger
	op       *Operation
	logFile  *os.File
}

// NewApp creates a fully wired App from the given config. A config without
// log_dir logs to the default log directory from GetDefaults.
// operation identifies the CLI command being run (e.g. "ResolveFile").
// The caller must call Close when done.
func NewApp(cfg *config.Config, operation string) (*App, error) {
	return newApp(cfg, operation, fs.NewOSFilesystem())
}

func newApp(cfg *config.Config, operation string, fsys paths.Filesystem) (*App, error) {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	logDir := cfg.LogDir
	if logDir == "" {
		defaults, err := GetDefaults()
		if err != nil {
			return nil, fmt.Errorf("getting defaults: %w", err)
		}
		logDir = defaults["log_dir"]
	}

	op := NewOperation(operation, "")
	l, logFile, err := newLogger(logDir, op.ID, level)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	logger := &slogAdapter{l: l}

	return &App{
		cfg:      cfg,
		resolver: paths.NewResolver(fsys, logger),
		logger:   logger,
		op:       op,
		logFile:  logFile,
	}, nil
}

// ResolveDirectory returns the existing directory for rawPath, falling back
// to the temp directory. Relative paths are made absolute first.
func (a *App) ResolveDirectory(rawPath string) (paths.ExistingDirectoryPath, error) {
	a.op.Parameter = rawPath
	absPath, err := filepath.Abs(rawPath)
	if err != nil {
		a.op.Fail()
		return paths.ExistingDirectoryPath{}, fmt.Errorf("resolving path: %w", err)
	}
	return a.resolver.ParseDirectory(absPath), nil
}

// ResolveFile returns the existing file for rawPath, falling back to the
// empty temp file. Relative paths are made absolute first.
func (a *App) ResolveFile(rawPath string) (paths.ExistingFilePath, error) {
	a.op.Parameter = rawPath
	absPath, err := filepath.Abs(rawPath)
	if err != nil {
		a.op.Fail()
		return paths.ExistingFilePath{}, fmt.Errorf("resolving path: %w", err)
	}
	file, err := a.resolver.ParseFile(absPath)
	if err != nil {
		a.op.Fail()
		return paths.ExistingFilePath{}, err
	}
	return file, nil
}

// Close logs the outcome of the operation and closes the log file.
func (a *App) Close() error {
	a.logger.Info("operation finished", "operation", a.op.Name, "parameter", a.op.Parameter, "status", a.op.Status, "base_dir", a.cfg.BaseDir)
	if a.logFile == nil {
		return nil
	}
	if err := a.logFile.Close(); err != nil {
		return fmt.Errorf("closing log file: %w", err)
	}
	return nil
}
