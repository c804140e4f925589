package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cleanConfig string
	cleanTarget string
)

func init() {
	cleanCmd.Flags().StringVar(&cleanConfig, "config", "", "Path to the config file (default: ./toolsbuild.yaml)")
	cleanCmd.Flags().StringVar(&cleanTarget, "target", "", "Target directory (default: target)")
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete the target directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		target := cleanTarget
		if target == "" {
			env, err := newEnv(cleanConfig, true)
			if err != nil {
				return err
			}
			target = env.cfg.TargetDir
		}

		if err := os.RemoveAll(target); err != nil {
			return fmt.Errorf("removing %s: %w", target, err)
		}
		fmt.Printf("Removed %s\n", target)
		return nil
	},
}
