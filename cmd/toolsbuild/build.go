package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/exoscale/tools.build/internal/pipeline"
)

var (
	buildConfig    string
	buildVerbose   bool
	buildNoColor   bool
	buildMainClass string
	buildTarget    string
)

func init() {
	buildCmd.Flags().StringVar(&buildConfig, "config", "", "Path to the config file (default: ./toolsbuild.yaml)")
	buildCmd.Flags().BoolVar(&buildVerbose, "verbose", false, "Show detailed build output")
	buildCmd.Flags().BoolVar(&buildNoColor, "no-color", false, "Disable colored output")
	buildCmd.Flags().StringVar(&buildMainClass, "main-class", "", "Entry-point class recorded in the manifest")
	buildCmd.Flags().StringVar(&buildTarget, "target", "", "Target directory (default: target)")
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile sources and package the jar",
	Long:  "Run the build pipeline: clean, compile, copy resources, sync the pom descriptor, and write the jar",
	RunE: func(cmd *cobra.Command, args []string) error {
		startTime := time.Now()

		env, err := newEnv(buildConfig, buildNoColor)
		if err != nil {
			return err
		}
		if buildMainClass != "" {
			env.cfg.MainClass = buildMainClass
		}
		if buildTarget != "" {
			env.cfg.TargetDir = buildTarget
		}

		ctx, err := env.newContext(buildVerbose)
		if err != nil {
			return err
		}

		stages := []pipeline.Stage{
			env.cleanStage(),
			env.compileStage(),
			env.resourcesStage(),
			env.pomStage(),
			env.jarStage(),
		}

		ctx, err = pipeline.Run(ctx, stages)
		if err != nil {
			env.status.Error("%v", err)
			return err
		}

		env.status.Success("built %s in %.2fs", ctx.JarFile(), time.Since(startTime).Seconds())
		return nil
	},
}
