package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	displayName string
	groupCode   string
	configPath  string
	logFile     string
	debugMode   bool
	startLat    float64
	startLng    float64
)

var rootCmd = &cobra.Command{
	Use:   "trailmate",
	Short: "Share your position with a hiking group",
	Long: `trailmate is a terminal companion for group hikes. It tracks your
position, draws it on a map alongside your group, and lets you join or
leave a shared session by group code.

Group members are currently simulated locally; no data leaves this
machine.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&displayName, "name", "n", "", "Display name prefilled in the join form")
	rootCmd.Flags().StringVarP(&groupCode, "code", "g", "", "Group code prefilled in the join form")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to an ini config file (defaults apply without one)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Write diagnostics to this file")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Log at debug level")
	rootCmd.Flags().Float64Var(&startLat, "lat", 48.7767, "Starting latitude for the simulated GPS")
	rootCmd.Flags().Float64Var(&startLng, "lng", -121.8132, "Starting longitude for the simulated GPS")
}
