package site

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hesusruiz/minihtml/minihtml"
)

// starterDocument is written into a source directory that does not exist yet.
const starterDocument = `[
    p{Congratulations, mini html is up and running}
]
`

// Page is the result of compiling one source file.
type Page struct {
	Source      string
	Output      string
	Diagnostics minihtml.Diagnostics
}

// Report lists the pages of one build, in source order.
type Report struct {
	Pages []Page
}

// Builder compiles every source file of a directory into an output directory.
type Builder struct {
	cfg      Config
	compiler *minihtml.Compiler
	template *Template
	log      *zap.SugaredLogger
}

// NewBuilder validates cfg and prepares a builder. The page template, if any,
// is read once here.
func NewBuilder(cfg Config, logger *zap.SugaredLogger) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for _, pattern := range cfg.Include {
		if !doublestar.ValidatePattern(pattern) {
			return nil, NewPatternError(pattern)
		}
	}

	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	b := &Builder{
		cfg:      cfg,
		compiler: minihtml.NewCompiler(cfg.Tables),
		log:      logger,
	}
	b.compiler.SetLogger(logger)

	if len(cfg.TemplateFile) > 0 {
		t, err := LoadTemplate(cfg.TemplateFile)
		if err != nil {
			return nil, err
		}
		b.template = t
	}

	return b, nil
}

// EnsureSourceDir creates dir with a starter document when it does not exist.
func EnsureSourceDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return NewPathConfigError(nil, ErrMsgSourceNotDir, dir)
		}
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return NewBuildError(err, ErrMsgWalkFailed, dir)
	}

	if err := os.MkdirAll(dir, 0o775); err != nil {
		return NewBuildError(err, ErrMsgStarterWrite, dir)
	}
	fileName := filepath.Join(dir, "index.minihtml")
	if err := os.WriteFile(fileName, []byte(starterDocument), 0o664); err != nil {
		return NewBuildError(err, ErrMsgStarterWrite, fileName)
	}
	return nil
}

// OutputName returns the name of the HTML file generated for source:
// its base name with the extension replaced by ".html".
func OutputName(source string) string {
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".html"
}

// Sources returns the files under the source directory selected by the
// include patterns, in lexical order.
func (b *Builder) Sources() ([]string, error) {
	var sources []string

	err := filepath.WalkDir(b.cfg.SourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(b.cfg.SourceDir, path)
		if err != nil {
			return err
		}
		if b.selected(filepath.ToSlash(rel)) {
			sources = append(sources, path)
		}
		return nil
	})
	if err != nil {
		return nil, NewBuildError(err, ErrMsgWalkFailed, b.cfg.SourceDir)
	}

	return sources, nil
}

func (b *Builder) selected(rel string) bool {
	for _, pattern := range b.cfg.Include {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// Build compiles every source file. Each file is compiled from scratch with
// its own tree and style registry, up to Workers files at a time.
//
// A failure on one file does not stop the others: all failures are joined
// in the returned error, and the report lists the pages that succeeded.
func (b *Builder) Build(ctx context.Context) (*Report, error) {
	sources, err := b.Sources()
	if err != nil {
		return nil, err
	}

	if !b.cfg.DryRun {
		if err := os.MkdirAll(b.cfg.OutputDir, 0o775); err != nil {
			return nil, NewBuildError(err, ErrMsgOutputDir, b.cfg.OutputDir)
		}
	}

	pages := make([]*Page, len(sources))
	var mu sync.Mutex
	var errs []error

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.cfg.Workers)

	for i, source := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			page, err := b.BuildFile(source)
			if err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
				return nil
			}
			pages[i] = page
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{}
	for _, p := range pages {
		if p != nil {
			report.Pages = append(report.Pages, *p)
		}
	}

	b.log.Infow("build finished", "sources", len(sources), "compiled", len(report.Pages), "failed", len(errs))
	return report, errors.Join(errs...)
}

// BuildFile compiles a single source file and writes its HTML to the output directory.
func (b *Builder) BuildFile(source string) (*Page, error) {
	src, err := os.ReadFile(source)
	if err != nil {
		return nil, NewBuildError(err, ErrMsgReadFailed, source)
	}

	html, diags := b.compiler.Compile(string(src))
	for _, d := range diags {
		// Classes without a style definition are usually plain CSS classes
		if d.Message == minihtml.MsgUndefinedClass {
			b.log.Debugw("class without style definition", "source", source, "class", d.Detail)
			continue
		}
		b.log.Warnw("recovered from malformed markup", "source", source, "stage", d.Stage, "msg", d.Message, "detail", d.Detail)
	}

	out := []byte(html)
	if b.template != nil {
		title := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
		out = b.template.Apply(title, out)
	}

	page := &Page{
		Source:      source,
		Output:      filepath.Join(b.cfg.OutputDir, OutputName(source)),
		Diagnostics: diags,
	}

	if b.cfg.DryRun {
		b.log.Debugw("dry run, output not written", "source", source)
		return page, nil
	}

	if err := os.WriteFile(page.Output, out, 0o664); err != nil {
		return nil, NewBuildError(err, ErrMsgWriteFailed, page.Output)
	}

	b.log.Infow("compiled", "source", source, "output", page.Output)
	return page, nil
}
