package site

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hesusruiz/vcutils/yaml"

	"github.com/hesusruiz/minihtml/minihtml"
)

// DefaultConfigFile is looked up in the source directory when no config file is given.
const DefaultConfigFile = "minihtml.yaml"

// DefaultInterval is the polling interval of the watch loop.
const DefaultInterval = 10 * time.Second

// DefaultPatterns select the source files, relative to the source directory.
var DefaultPatterns = []string{"**/*.minihtml", "**/*.mhtml"}

// Config holds everything needed to build a directory of minihtml documents.
type Config struct {
	// SourceDir is walked recursively for source files.
	SourceDir string

	// OutputDir receives one .html file per source file.
	OutputDir string

	// Include holds doublestar patterns selecting the source files.
	Include []string

	// TemplateFile, when set, is a page the compiled HTML is placed into.
	TemplateFile string

	// Tables are passed to the compiler.
	Tables minihtml.Tables

	// Interval is the polling interval used by the watch loop.
	Interval time.Duration

	// Workers bounds the number of files compiled at the same time.
	Workers int

	// DryRun compiles without writing any output.
	DryRun bool
}

// DefaultConfig returns a configuration with the built-in tables.
func DefaultConfig() Config {
	return Config{
		Include:  append([]string(nil), DefaultPatterns...),
		Tables:   minihtml.DefaultTables(),
		Interval: DefaultInterval,
		Workers:  1,
	}
}

// Validate checks that the configuration can be used for a build.
func (c *Config) Validate() error {
	if len(c.SourceDir) == 0 {
		return NewConfigError(ErrMsgNoSourceDir)
	}
	if len(c.OutputDir) == 0 {
		return NewConfigError(ErrMsgNoOutputDir)
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}
	return nil
}

// LoadConfig merges the YAML config file fileName into c.
//
// Recognized keys are "translation" and "styles" (maps merged over the
// current tables), "stylePrefix", "template" (relative to the config file),
// "include" (list of patterns replacing the current ones), "interval" (seconds)
// and "workers".
func (c *Config) LoadConfig(fileName string) error {
	cfg, err := yaml.ParseYamlFile(fileName)
	if err != nil {
		return NewPathConfigError(err, ErrMsgConfigRead, fileName)
	}

	if c.Tables.Translation == nil {
		c.Tables.Translation = make(map[string]string)
	}
	if c.Tables.Directives == nil {
		c.Tables.Directives = make(map[string]string)
	}

	for k, v := range cfg.Map("translation") {
		c.Tables.Translation[k] = fmt.Sprint(v)
	}
	for k, v := range cfg.Map("styles") {
		c.Tables.Directives[k] = fmt.Sprint(v)
	}

	c.Tables.StylePrefix = cfg.String("stylePrefix", c.Tables.StylePrefix)

	if template := cfg.String("template", ""); len(template) > 0 {
		if !filepath.IsAbs(template) {
			template = filepath.Join(filepath.Dir(fileName), template)
		}
		c.TemplateFile = template
	}

	if include := cfg.List("include"); len(include) > 0 {
		c.Include = c.Include[:0]
		for _, p := range include {
			c.Include = append(c.Include, fmt.Sprint(p))
		}
	}

	// Integers come out of the YAML decoder as uint64, read them from the raw values
	top := cfg.Map("")

	seconds, err := intValue(top, "interval", fileName)
	if err != nil {
		return err
	}
	if seconds > 0 {
		c.Interval = time.Duration(seconds) * time.Second
	}

	workers, err := intValue(top, "workers", fileName)
	if err != nil {
		return err
	}
	if workers > 0 {
		c.Workers = workers
	}

	return nil
}

// intValue returns the integer under key, or zero when key is absent.
func intValue(top map[string]any, key string, fileName string) (int, error) {
	v, ok := top[key]
	if !ok || v == nil {
		return 0, nil
	}
	n, err := strconv.Atoi(fmt.Sprint(v))
	if err != nil {
		return 0, NewPathConfigError(err, ErrMsgConfigNotNumber+": "+key, fileName)
	}
	return n, nil
}

// FindConfigFile returns the default config file of the source directory,
// or the empty string if there is none.
func (c *Config) FindConfigFile() string {
	fileName := filepath.Join(c.SourceDir, DefaultConfigFile)
	if info, err := os.Stat(fileName); err == nil && info.Mode().IsRegular() {
		return fileName
	}
	return ""
}
