package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/metalagman/boxplan/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	debug   bool
	rootCmd = &cobra.Command{
		Use:   "boxplan",
		Short: "boxplan compiles Box-World instances to PDDL and runs a planner over them",
	}
)

// Execute runs the root command.
func Execute() error {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", filepath.Join(".boxplan", "config.json"), "config file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	if err := viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config")); err != nil {
		return fmt.Errorf("bind config flag: %w", err)
	}
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logging.Init(debug)
	}
	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(solveCmd())
	rootCmd.AddCommand(parsePlanCmd())
	rootCmd.AddCommand(domainCmd())
	rootCmd.AddCommand(runsCmd())
	return rootCmd.Execute()
}

func initConfig() {
	_ = godotenv.Load()
	viper.SetEnvPrefix("BOXPLAN")
	viper.AutomaticEnv()
	path := cfgFile
	if path == "" {
		path = filepath.Join(".boxplan", "config.json")
	}
	viper.SetConfigFile(path)
	viper.SetConfigType("json")
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
}
