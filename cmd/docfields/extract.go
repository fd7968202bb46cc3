package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func extractCmd(logger *slog.Logger) *cobra.Command {
	var (
		docType string
		pretty  bool
	)

	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract fields from one document (file path or '-' for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args[0])
			if err != nil {
				return err
			}

			ex, _, err := buildExtractor(logger)
			if err != nil {
				return err
			}

			fields, ok := ex.ExtractData(context.Background(), text, docType)
			if !ok {
				return fmt.Errorf("extraction not available for document type %q (no model configured and no fallback)", docType)
			}

			var out []byte
			if pretty {
				out, err = json.MarshalIndent(fields, "", "  ")
			} else {
				out, err = json.Marshal(fields)
			}
			if err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&docType, "type", "", "document type tag (e.g. invoice, receipt, contract_summary, workers_comp)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func readInput(arg string) (string, error) {
	if arg == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(arg)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", arg, err)
	}
	return string(b), nil
}
