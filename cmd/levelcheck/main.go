// Command levelcheck validates level files and runs them headless.
package main

import (
	"fmt"
	"os"

	"github.com/milk9111/brickfall/prefabs"
	"github.com/spf13/cobra"
)

var prefabDir string

var rootCmd = &cobra.Command{
	Use:   "levelcheck",
	Short: "Validate and simulate brickfall levels",
	Long:  `levelcheck loads levels with the same spawner the game uses, reports problems, and can play a level headless with scripted input.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		prefabs.Dir = prefabDir
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&prefabDir, "prefabs", prefabs.Dir, "on-disk prefab directory that shadows the embedded copies")
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(simulateCmd)
}
