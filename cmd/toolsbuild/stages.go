package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/exoscale/tools.build/internal/cli/config"
	"github.com/exoscale/tools.build/internal/cli/ui"
	"github.com/exoscale/tools.build/internal/jar"
	"github.com/exoscale/tools.build/internal/javac"
	"github.com/exoscale/tools.build/internal/manifest"
	"github.com/exoscale/tools.build/internal/pipeline"
	"github.com/exoscale/tools.build/internal/pom"
)

// buildEnv bundles what every stage needs besides the pipeline context:
// the loaded config, the status printer, and the compiler.
type buildEnv struct {
	cfg      *config.Config
	status   *ui.Status
	compiler javac.Compiler
}

func newEnv(configFile string, noColor bool) (*buildEnv, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	return &buildEnv{
		cfg:      cfg,
		status:   ui.NewStatus(os.Stdout, noColor),
		compiler: &javac.Exec{},
	}, nil
}

// newContext builds the pipeline context from the loaded config. The
// logger is verbose-gated: a development zap logger when asked for,
// a no-op one otherwise.
func (e *buildEnv) newContext(verbose bool) (*pipeline.Context, error) {
	if err := config.Validate(e.cfg); err != nil {
		return nil, err
	}

	log := zap.NewNop()
	if verbose {
		devLog, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
		log = devLog
	}

	ctx := pipeline.New(log)
	ctx.Lib = e.cfg.Lib
	ctx.Version = e.cfg.Version
	ctx.MainClass = e.cfg.MainClass
	ctx.TargetDir = e.cfg.TargetDir
	ctx.SourceDirs = e.cfg.SourceDirs
	ctx.ResourceDirs = e.cfg.ResourceDirs
	ctx.JavacOpts = e.cfg.JavacOpts
	ctx.Deps = e.cfg.Deps
	return ctx, nil
}

func (e *buildEnv) cleanStage() pipeline.Stage {
	return pipeline.Stage{Name: "clean", Run: func(ctx *pipeline.Context) (*pipeline.Context, error) {
		e.status.Stage("clean")
		if err := os.RemoveAll(ctx.TargetDir); err != nil {
			return nil, fmt.Errorf("removing %s: %w", ctx.TargetDir, err)
		}
		if err := os.MkdirAll(ctx.TargetDir, 0755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", ctx.TargetDir, err)
		}
		return ctx, nil
	}}
}

func (e *buildEnv) compileStage() pipeline.Stage {
	return pipeline.Stage{Name: "compile", Run: func(ctx *pipeline.Context) (*pipeline.Context, error) {
		e.status.Stage("compile")
		err := e.compiler.Compile(ctx.SourceDirs, ctx.DepPaths(), ctx.ClassDir(), ctx.JavacOpts)
		if err != nil {
			return nil, err
		}
		return ctx, nil
	}}
}

// resourcesStage copies the resource trees into the class directory so
// they ship inside the jar. Resource dirs are plain trees, so the
// exploder's plain-copy path does the work, collision policy included.
func (e *buildEnv) resourcesStage() pipeline.Stage {
	return pipeline.Stage{Name: "resources", Run: func(ctx *pipeline.Context) (*pipeline.Context, error) {
		e.status.Stage("resources")
		if err := os.MkdirAll(ctx.ClassDir(), 0755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", ctx.ClassDir(), err)
		}
		for _, dir := range ctx.ResourceDirs {
			if _, err := os.Stat(dir); err != nil {
				continue
			}
			if err := jar.Explode(dir, ctx.ClassDir(), e.status.Collision); err != nil {
				return nil, err
			}
		}
		return ctx, nil
	}}
}

func (e *buildEnv) pomStage() pipeline.Stage {
	return pipeline.Stage{Name: "sync-pom", Run: func(ctx *pipeline.Context) (*pipeline.Context, error) {
		e.status.Stage("sync-pom")
		err := pom.Sync(e.cfg.Pom, ctx.ClassDir(), ctx.Group(), ctx.Artifact(), ctx.Version)
		if err != nil {
			return nil, err
		}
		return ctx, nil
	}}
}

func (e *buildEnv) jarStage() pipeline.Stage {
	return pipeline.Stage{Name: "jar", Run: func(ctx *pipeline.Context) (*pipeline.Context, error) {
		e.status.Stage("jar")
		m, err := manifest.Build(manifest.Attributes(ctx.MainClass))
		if err != nil {
			return nil, err
		}
		if err := jar.Write(ctx.JarFile(), m, ctx.ClassDir()); err != nil {
			return nil, err
		}
		e.status.Info("wrote %s", ctx.JarFile())
		return ctx, nil
	}}
}

// uberStage merges the primary jar and every resolved dependency into
// one standalone jar. The staging tree is created fresh here and lives
// for exactly this invocation; on failure it stays behind for
// inspection.
func (e *buildEnv) uberStage() pipeline.Stage {
	return pipeline.Stage{Name: "uber", Run: func(ctx *pipeline.Context) (*pipeline.Context, error) {
		e.status.Stage("uber")
		if err := os.RemoveAll(ctx.UberDir()); err != nil {
			return nil, fmt.Errorf("removing %s: %w", ctx.UberDir(), err)
		}
		if err := os.MkdirAll(ctx.UberDir(), 0755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", ctx.UberDir(), err)
		}
		err := jar.Assemble(ctx.JarFile(), ctx.DepPaths(), ctx.UberFile(), ctx.UberDir(), e.status.Collision)
		if err != nil {
			return nil, err
		}
		e.status.Info("wrote %s", ctx.UberFile())
		return ctx, nil
	}}
}
