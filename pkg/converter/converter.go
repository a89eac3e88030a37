// Package converter runs the Neovim to IdeaVim conversion: it reads the two
// Lua input files, runs the settings and keymap passes, and writes the
// assembled .ideavimrc.
package converter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/nvim2idea/pkg/config"
	"github.com/grovetools/nvim2idea/pkg/document"
	"github.com/grovetools/nvim2idea/pkg/ideavim"
	"github.com/grovetools/nvim2idea/pkg/keymap"
	applog "github.com/grovetools/nvim2idea/pkg/logger"
	"github.com/grovetools/nvim2idea/pkg/settings"
)

// Options configures a conversion run. Zero values fall back to the defaults
// in package config.
type Options struct {
	NvimDir      string
	OutputPath   string
	SettingsFile string
	KeymapsFile  string
	DryRun       bool
	Stdout       io.Writer
	Now          func() time.Time
	Logger       *logrus.Logger
}

// OptionsFromConfig builds run options from a loaded config.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		NvimDir:      cfg.NvimDir,
		OutputPath:   cfg.Output,
		SettingsFile: cfg.SettingsFile,
		KeymapsFile:  cfg.KeymapsFile,
	}
}

func (o *Options) applyDefaults() {
	def := config.Defaults()
	if o.NvimDir == "" {
		o.NvimDir = def.NvimDir
	}
	if o.OutputPath == "" {
		o.OutputPath = def.Output
	}
	if o.SettingsFile == "" {
		o.SettingsFile = def.SettingsFile
	}
	if o.KeymapsFile == "" {
		o.KeymapsFile = def.KeymapsFile
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Logger == nil {
		o.Logger = applog.Discard()
	}
	o.NvimDir = config.ExpandPath(o.NvimDir)
	o.OutputPath = config.ExpandPath(o.OutputPath)
}

// Result describes a completed run.
type Result struct {
	OutputPath string            `json:"output_path" yaml:"output_path"`
	DryRun     bool              `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
	Settings   []string          `json:"settings" yaml:"settings"`
	Mappings   []string          `json:"mappings" yaml:"mappings"`
	Warnings   []ideavim.Warning `json:"warnings" yaml:"warnings"`
	Conflicts  []keymap.Conflict `json:"conflicts,omitempty" yaml:"conflicts,omitempty"`
	Bytes      int               `json:"bytes" yaml:"bytes"`
}

// Run performs a full conversion. Missing input files become warnings;
// any other I/O failure is returned.
func Run(ctx context.Context, opts Options) (*Result, error) {
	opts.applyDefaults()
	log := opts.Logger

	res := &Result{OutputPath: opts.OutputPath, DryRun: opts.DryRun}

	settingsPath := resolve(opts.NvimDir, opts.SettingsFile)
	lines, found, err := readLines(settingsPath)
	if err != nil {
		return nil, err
	}
	if found {
		checkLua(log, settingsPath, lines)
		res.Settings = settings.Extract(lines)
		log.WithFields(logrus.Fields{"file": settingsPath, "directives": len(res.Settings)}).Debug("Converted settings")
	} else {
		res.Warnings = append(res.Warnings, ideavim.MissingFile(filepath.Base(settingsPath)))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	keymapsPath := resolve(opts.NvimDir, opts.KeymapsFile)
	lines, found, err = readLines(keymapsPath)
	if err != nil {
		return nil, err
	}
	if found {
		checkLua(log, keymapsPath, lines)
		km := keymap.NewExtractor(log).Extract(lines)
		res.Mappings = km.Lines
		res.Warnings = append(res.Warnings, km.Warnings...)
		log.WithFields(logrus.Fields{"file": keymapsPath, "mappings": len(km.Lines)}).Debug("Converted keymaps")
	} else {
		res.Warnings = append(res.Warnings, ideavim.MissingFile(filepath.Base(keymapsPath)))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := document.Assemble(document.Input{
		Generated: opts.Now(),
		Settings:  res.Settings,
		Mappings:  res.Mappings,
		Warnings:  res.Warnings,
	})

	res.Conflicts = keymap.DetectConflicts(doc)
	for _, c := range res.Conflicts {
		log.WithFields(logrus.Fields{"key": c.Key, "mode": c.Mode, "bindings": len(c.Bindings)}).Debug("Key bound more than once")
	}

	data := document.Render(doc)

	w := &document.Writer{DryRun: opts.DryRun, Out: opts.Stdout, Logger: log}
	if err := w.Write(opts.OutputPath, data); err != nil {
		return nil, err
	}
	res.Bytes = len(data)

	return res, nil
}

func resolve(dir, file string) string {
	file = config.ExpandPath(file)
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}

// readLines reads a whole text file. found is false when the file does not exist.
func readLines(path string) (lines []string, found bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	// Lines have no length limit; a final line without a newline still counts.
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if errors.Is(err, io.EOF) {
			return lines, true, nil
		}
		if err != nil {
			return nil, true, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}
}
