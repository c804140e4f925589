package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/exoscale/tools.build/internal/pipeline"
)

var (
	uberConfig    string
	uberVerbose   bool
	uberNoColor   bool
	uberMainClass string
	uberTarget    string
)

func init() {
	uberCmd.Flags().StringVar(&uberConfig, "config", "", "Path to the config file (default: ./toolsbuild.yaml)")
	uberCmd.Flags().BoolVar(&uberVerbose, "verbose", false, "Show detailed build output")
	uberCmd.Flags().BoolVar(&uberNoColor, "no-color", false, "Disable colored output")
	uberCmd.Flags().StringVar(&uberMainClass, "main-class", "", "Entry-point class recorded in the manifest")
	uberCmd.Flags().StringVar(&uberTarget, "target", "", "Target directory (default: target)")
}

var uberCmd = &cobra.Command{
	Use:   "uber",
	Short: "Build the jar and flatten it with its dependencies into a standalone jar",
	Long: `Run the full pipeline and then merge the built jar with every resolved
dependency archive into one self-contained standalone jar. When a
dependency and the built artifact both carry a file at the same path,
the built artifact's bytes win; the conflict is reported and the build
continues.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		startTime := time.Now()

		env, err := newEnv(uberConfig, uberNoColor)
		if err != nil {
			return err
		}
		if uberMainClass != "" {
			env.cfg.MainClass = uberMainClass
		}
		if uberTarget != "" {
			env.cfg.TargetDir = uberTarget
		}

		ctx, err := env.newContext(uberVerbose)
		if err != nil {
			return err
		}

		stages := []pipeline.Stage{
			env.cleanStage(),
			env.compileStage(),
			env.resourcesStage(),
			env.pomStage(),
			env.jarStage(),
			env.uberStage(),
		}

		ctx, err = pipeline.Run(ctx, stages)
		if err != nil {
			env.status.Error("%v", err)
			return err
		}

		env.status.Success("built %s in %.2fs", ctx.UberFile(), time.Since(startTime).Seconds())
		return nil
	},
}
