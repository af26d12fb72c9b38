// Package project scopes a directory tree down to the source files the
// analyzer should parse, via glob-based include/exclude matching, and
// returns them as an ordered, already-parsed facade.File slice.
package project

import (
	"context"
	"io"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"go.uber.org/zap"

	"github.com/viant/stateaudit/analyzer/facade"
)

// defaultInclude matches the typed JS-family surface language source
// extensions the analyzer understands.
var defaultInclude = []string{"**/*.ts", "**/*.tsx", "**/*.js", "**/*.jsx"}

// Loader walks a root directory and parses every matched file.
type Loader struct {
	fs      afs.Service
	include []string
	exclude []string
	logger  *zap.SugaredLogger
}

// Option configures a Loader.
type Option func(*Loader)

// WithInclude overrides the default include globs.
func WithInclude(globs ...string) Option {
	return func(l *Loader) { l.include = globs }
}

// WithExclude sets exclude globs, matched against the path relative to root.
func WithExclude(globs ...string) Option {
	return func(l *Loader) { l.exclude = globs }
}

// WithLogger attaches a logger used to report soft-skip decisions.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(l *Loader) { l.logger = logger }
}

// New builds a Loader backed by the abstract filesystem service.
func New(opts ...Option) *Loader {
	l := &Loader{fs: afs.New(), include: defaultInclude, logger: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load walks root, matches every regular file against the include/exclude
// globs, parses the survivors through the AST Facade, and returns them
// sorted by path — the ordering the pipeline's determinism requirement
// depends on. A file that fails to read or parse is logged at Debug and
// skipped rather than aborting the whole run.
func (l *Loader) Load(ctx context.Context, root string) ([]*facade.File, error) {
	var paths []string
	visitor := func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if info.IsDir() {
			return true, nil
		}
		rel := url.Join(parent, info.Name())
		if !l.matches(rel) {
			return true, nil
		}
		paths = append(paths, url.Join(baseURL, rel))
		return true, nil
	}
	if err := l.fs.Walk(ctx, root, visitor); err != nil {
		return nil, err
	}
	sort.Strings(paths)

	files := make([]*facade.File, 0, len(paths))
	for _, path := range paths {
		data, err := l.fs.DownloadWithURL(ctx, path)
		if err != nil {
			l.logger.Debugw("skipping unreadable source file", "path", path, "error", err)
			continue
		}
		f, err := facade.Parse(path, data)
		if err != nil {
			l.logger.Debugw("skipping unparseable source file", "path", path, "error", err)
			continue
		}
		files = append(files, f)
	}
	return files, nil
}

func (l *Loader) matches(rel string) bool {
	included := len(l.include) == 0
	for _, pattern := range l.include {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			included = true
			break
		}
	}
	if !included {
		return false
	}
	for _, pattern := range l.exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return false
		}
	}
	return true
}
