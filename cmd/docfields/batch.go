package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/docfields/constants"
	"github.com/joseph-ayodele/docfields/internal/export"
	"github.com/joseph-ayodele/docfields/internal/jobstore"
)

func batchCmd(logger *slog.Logger) *cobra.Command {
	var (
		docType string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "batch [dir]",
		Short: "Extract fields from every .txt file in a directory and export the results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			entries, err := os.ReadDir(dir)
			if err != nil {
				return fmt.Errorf("read dir %s: %w", dir, err)
			}
			var files []string
			for _, e := range entries {
				if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".txt") {
					files = append(files, filepath.Join(dir, e.Name()))
				}
			}
			sort.Strings(files)
			if len(files) == 0 {
				return fmt.Errorf("no .txt files in %s", dir)
			}

			ex, cfg, err := buildExtractor(logger)
			if err != nil {
				return err
			}

			var audit *jobstore.Store
			if cfg.Extract.AuditDBPath != "" {
				audit, err = jobstore.Open(cfg.Extract.AuditDBPath, logger)
				if err != nil {
					return err
				}
				defer func() {
					if err := audit.Close(); err != nil {
						logger.Warn("audit db close error", "error", err)
					}
				}()
			}

			ctx := context.Background()
			results := make([]export.Result, 0, len(files))
			for _, path := range files {
				b, err := os.ReadFile(path)
				if err != nil {
					logger.Error("batch.read_error", "path", path, "error", err)
					continue
				}

				start := time.Now()
				fields, ok := ex.ExtractData(ctx, string(b), docType)
				results = append(results, export.Result{
					Source:  path,
					DocType: docType,
					OK:      ok,
					Fields:  fields,
				})

				if audit != nil {
					status := constants.JobStatusOK
					if !ok {
						status = constants.JobStatusNotAvailable
					}
					var resultJSON []byte
					if ok {
						resultJSON, _ = json.Marshal(fields)
					}
					rec := jobstore.JobRecord{
						ID:         uuid.New().String(),
						DocType:    docType,
						Source:     path,
						Status:     status,
						StartedAt:  start,
						Elapsed:    time.Since(start),
						FieldCount: len(fields),
						ResultJSON: resultJSON,
					}
					if err := audit.Append(ctx, rec); err != nil {
						logger.Error("batch.audit_error", "path", path, "error", err)
					}
				}
			}

			return writeResults(outPath, results)
		},
	}

	cmd.Flags().StringVar(&docType, "type", "", "document type tag applied to every file")
	cmd.Flags().StringVar(&outPath, "out", "results.xlsx", "output path (.xlsx or .csv)")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func writeResults(path string, results []export.Result) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		b, err := export.ResultsXLSX(results)
		if err != nil {
			return err
		}
		return os.WriteFile(path, b, 0o644)
	case ".csv":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		defer func() { _ = f.Close() }()
		return export.WriteCSV(f, results)
	default:
		return fmt.Errorf("unsupported output extension %q (want .xlsx or .csv)", filepath.Ext(path))
	}
}
