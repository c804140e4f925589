// Package pipeline threads a build context through an ordered list of
// stages. Stages are synchronous and run to completion; the first error
// halts everything, and a stage may end the pipeline early by returning
// a nil context.
package pipeline

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Context carries the build parameters and the resolved dependency set
// through the pipeline. It is append-only: stages never mutate the
// context they receive, they return a replacement (usually the same
// one) for the next stage.
type Context struct {
	// Lib is the library coordinate as "group/artifact".
	Lib          string
	Version      string
	MainClass    string
	TargetDir    string
	SourceDirs   []string
	ResourceDirs []string
	JavacOpts    []string

	// Deps maps a dependency id to the ordered file-system paths it
	// resolved to. Resolution itself happens upstream; the pipeline
	// only consumes paths.
	Deps map[string][]string

	log   *zap.Logger
	runID string
}

// New returns a context tagged with a fresh run id. The logger records
// stage progress and debug detail; pass zap.NewNop() outside verbose
// runs.
func New(log *zap.Logger) *Context {
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.NewString()
	return &Context{
		log:   log.With(zap.String("run_id", id)),
		runID: id,
	}
}

// Logger returns the run-scoped logger.
func (c *Context) Logger() *zap.Logger { return c.log }

// RunID returns the identifier tagged onto this pipeline run's logs.
func (c *Context) RunID() string { return c.runID }

// Artifact returns the artifact part of the library coordinate.
func (c *Context) Artifact() string {
	if _, artifact, ok := strings.Cut(c.Lib, "/"); ok {
		return artifact
	}
	return c.Lib
}

// Group returns the group part of the library coordinate, or the whole
// coordinate when no group is present.
func (c *Context) Group() string {
	if group, _, ok := strings.Cut(c.Lib, "/"); ok {
		return group
	}
	return c.Lib
}

// ClassDir is where compiled classes and copied resources land.
func (c *Context) ClassDir() string {
	return filepath.Join(c.TargetDir, "classes")
}

// JarFile is the primary artifact path.
func (c *Context) JarFile() string {
	return filepath.Join(c.TargetDir, fmt.Sprintf("%s-%s.jar", c.Artifact(), c.Version))
}

// UberDir is the disposable staging tree for uber assembly. It lives
// for exactly one invocation.
func (c *Context) UberDir() string {
	return filepath.Join(c.TargetDir, "uber")
}

// UberFile is the merged standalone artifact path.
func (c *Context) UberFile() string {
	return filepath.Join(c.TargetDir, fmt.Sprintf("%s-%s-standalone.jar", c.Artifact(), c.Version))
}

// DepPaths flattens the resolved dependency mapping into one ordered
// path list: dependency ids in sorted order, each id's paths in their
// resolved order. Sorting the ids keeps classpaths and uber input
// order stable across runs.
func (c *Context) DepPaths() []string {
	ids := make([]string, 0, len(c.Deps))
	for id := range c.Deps {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var paths []string
	for _, id := range ids {
		paths = append(paths, c.Deps[id]...)
	}
	return paths
}

// Stage is one named step of a build. Returning a nil context stops
// the pipeline without error.
type Stage struct {
	Name string
	Run  func(*Context) (*Context, error)
}

// Run folds the context through stages in order. The first stage error
// aborts the run and is returned wrapped with the stage name; remaining
// stages do not execute. A nil context from a stage ends the run early
// with the last good context.
func Run(ctx *Context, stages []Stage) (*Context, error) {
	for _, stage := range stages {
		start := time.Now()
		ctx.log.Debug("stage starting", zap.String("stage", stage.Name))

		next, err := stage.Run(ctx)
		if err != nil {
			ctx.log.Debug("stage failed",
				zap.String("stage", stage.Name),
				zap.Error(err))
			return nil, fmt.Errorf("stage %s: %w", stage.Name, err)
		}

		ctx.log.Debug("stage finished",
			zap.String("stage", stage.Name),
			zap.Duration("elapsed", time.Since(start)))

		if next == nil {
			ctx.log.Debug("pipeline terminated early", zap.String("stage", stage.Name))
			return ctx, nil
		}
		ctx = next
	}
	return ctx, nil
}
