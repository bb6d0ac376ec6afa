package maglayout

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/foomo/maglayout/vo"
	"github.com/prometheus/client_golang/prometheus"
)

// IndexMode how examples are numbered, when files are skipped
type IndexMode string

const (
	// IndexSuccesses numbers yielded examples 0..n-1 without gaps
	IndexSuccesses IndexMode = "successes"
	// IndexFiles uses the position of the file among all annotation files
	IndexFiles IndexMode = "files"
)

const annotationExt = ".xml"

type Walker struct {
	layoutDir  string
	builder    *Builder
	logger     *slog.Logger
	indexMode  IndexMode
	registerer prometheus.Registerer
	metrics    *metrics
}

type Option func(w *Walker)

func WithLogger(logger *slog.Logger) Option {
	return func(w *Walker) {
		w.logger = logger
	}
}

func WithIndexMode(mode IndexMode) Option {
	return func(w *Walker) {
		w.indexMode = mode
	}
}

// WithRegisterer registers the walker metrics, without it metrics are
// only kept in memory
func WithRegisterer(registerer prometheus.Registerer) Option {
	return func(w *Walker) {
		w.registerer = registerer
	}
}

func WithNormalizedKeywords(normalize bool) Option {
	return func(w *Walker) {
		w.builder.NormalizeKeywords = normalize
	}
}

func NewWalker(layoutDir, imageDir string, opts ...Option) *Walker {
	w := &Walker{
		layoutDir: layoutDir,
		builder:   &Builder{ImageDir: imageDir},
		logger:    slog.Default(),
		indexMode: IndexSuccesses,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.metrics = newMetrics(w.registerer)
	return w
}

// Walk starts a new pass over the layout directory. Nothing is read before
// the first call of Next.
func (w *Walker) Walk() *Examples {
	return &Examples{walker: w}
}

// Examples a single pass iterator over the annotations of a corpus
//
//	examples := w.Walk()
//	for examples.Next() {
//		ex := examples.Example()
//		...
//		ex.Annotation.Close()
//	}
//	if err := examples.Err(); err != nil {
//		...
//	}
type Examples struct {
	walker       *Walker
	files        []string
	pos          int
	yielded      int
	current      vo.Example
	lastDuration time.Duration
	skipped      []vo.Skip
	err          error
	done         bool
}

func listAnnotationFiles(dir string) ([]string, error) {
	entries, errRead := os.ReadDir(dir)
	if errRead != nil {
		return nil, errRead
	}
	files := []string{}
	// os.ReadDir sorts by name
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != annotationExt {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}

// Next builds the next annotation, malformed files are skipped. It returns
// false, when the corpus is exhausted or a fatal error occurred.
func (e *Examples) Next() bool {
	if e.done {
		return false
	}
	w := e.walker
	if e.files == nil {
		files, errList := listAnnotationFiles(w.layoutDir)
		if errList != nil {
			e.fail(fmt.Errorf("could not list annotations: %w", errList))
			return false
		}
		e.files = files
		w.metrics.progressGauge.Set(0)
	}
	for e.pos < len(e.files) {
		position := e.pos
		file := e.files[position]
		e.pos++
		w.metrics.progressGauge.Set(float64(e.pos))

		start := time.Now()
		la, errBuild := w.builder.Build(file)
		if errBuild != nil {
			var annotationErr *AnnotationError
			if errors.As(errBuild, &annotationErr) {
				w.logger.Warn("skipping malformed annotation", "file", file, "error", errBuild)
				e.skipped = append(e.skipped, vo.Skip{
					File:     file,
					Position: position,
					Reason:   annotationErr.Err.Error(),
				})
				w.metrics.skippedCounter.Inc()
				continue
			}
			e.fail(errBuild)
			return false
		}
		e.lastDuration = time.Since(start)
		w.metrics.buildSummaryVec.WithLabelValues(la.Category).Observe(e.lastDuration.Seconds())
		w.metrics.annotationCounter.WithLabelValues(la.Category).Inc()
		w.metrics.imagesCounter.Add(float64(len(la.Images)))

		index := e.yielded
		if w.indexMode == IndexFiles {
			index = position
		}
		e.yielded++
		e.current = vo.Example{
			Index:      index,
			File:       file,
			Annotation: la,
		}
		return true
	}
	e.done = true
	return false
}

func (e *Examples) fail(err error) {
	e.err = err
	e.done = true
	e.current = vo.Example{}
	e.walker.logger.Error("walk aborted", "dir", e.walker.layoutDir, "error", err)
}

// Example the example built by the last successful call of Next
func (e *Examples) Example() vo.Example {
	return e.current
}

// Err the fatal error, that ended the walk
func (e *Examples) Err() error {
	return e.err
}

// Skipped malformed files, that were skipped so far
func (e *Examples) Skipped() []vo.Skip {
	return e.skipped
}

// Files number of annotation files in the walked directory
func (e *Examples) Files() int {
	return len(e.files)
}

// Seq exposes the remaining examples as a range func, check Err afterwards
func (e *Examples) Seq() iter.Seq2[int, vo.LayoutAnnotation] {
	return func(yield func(int, vo.LayoutAnnotation) bool) {
		for e.Next() {
			ex := e.Example()
			if !yield(ex.Index, ex.Annotation) {
				return
			}
		}
	}
}

// Collect drains a complete walk into a status, all images are closed
func (w *Walker) Collect() (status vo.Status, err error) {
	status = vo.Status{
		LayoutDir: w.layoutDir,
		ImageDir:  w.builder.ImageDir,
		Started:   time.Now(),
		Results:   []vo.Result{},
	}
	examples := w.Walk()
	for examples.Next() {
		ex := examples.Example()
		status.Results = append(status.Results, vo.NewResult(ex, examples.lastDuration))
		validations := vo.ValidateAnnotation(ex.File, ex.Annotation)
		w.metrics.trackValidations(validations)
		status.Validations = append(status.Validations, validations...)
		if errClose := ex.Annotation.Close(); errClose != nil {
			w.logger.Warn("could not close images", "file", ex.File, "error", errClose)
		}
	}
	status.Files = examples.Files()
	status.Skipped = examples.Skipped()
	status.Duration = time.Since(status.Started)
	if err = examples.Err(); err != nil {
		status.Error = err.Error()
	}
	return status, err
}
