package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/docfields/internal/common"
	"github.com/joseph-ayodele/docfields/internal/jobstore"
)

func jobsCmd(logger *slog.Logger) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "List recent extraction runs from the audit log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := common.LoadConfig()
			if cfgPath != "" {
				if err := cfg.ApplyFile(cfgPath); err != nil {
					return err
				}
			}
			if cfg.Extract.AuditDBPath == "" {
				return fmt.Errorf("no audit DB configured (set DOCFIELDS_AUDIT_DB or extract.audit_db_path)")
			}

			store, err := jobstore.Open(cfg.Extract.AuditDBPath, logger)
			if err != nil {
				return err
			}
			defer func() {
				if err := store.Close(); err != nil {
					logger.Warn("audit db close error", "error", err)
				}
			}()

			jobs, err := store.List(context.Background(), limit)
			if err != nil {
				return err
			}
			if len(jobs) == 0 {
				fmt.Println("No extraction runs recorded")
				return nil
			}

			fmt.Printf("%-20s %-18s %-14s %-8s %-8s %s\n",
				"Started", "Doc Type", "Status", "Fields", "ms", "Source")
			fmt.Println(strings.Repeat("-", 100))
			for _, j := range jobs {
				fmt.Printf("%-20s %-18s %-14s %-8d %-8d %s\n",
					j.StartedAt.Format("2006-01-02 15:04:05"),
					j.DocType,
					string(j.Status),
					j.FieldCount,
					j.Elapsed.Milliseconds(),
					j.Source,
				)
			}
			fmt.Printf("\nTotal: %d runs\n", len(jobs))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "maximum runs to list")
	return cmd
}
