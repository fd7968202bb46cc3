package main

import (
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	root := &cobra.Command{
		Use:   "docfields",
		Short: "Extract structured fields from document text",
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "optional YAML config file")

	root.AddCommand(
		extractCmd(logger),
		batchCmd(logger),
		schemasCmd(),
		jobsCmd(logger),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
