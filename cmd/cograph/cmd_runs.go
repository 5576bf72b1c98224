package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect archived analysis runs",
	}

	var limit int

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List archived runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := archivePipeline(cmd)
			if err != nil {
				return err
			}
			defer p.close()

			runs, err := p.runs.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if flagFmt == "table" {
				rows := make([][]string, 0, len(runs))
				for _, r := range runs {
					rows = append(rows, []string{
						r.ID,
						r.CreatedAt.Format("2006-01-02 15:04:05"),
						strconv.Itoa(r.Nodes),
						strconv.Itoa(r.Edges),
						strconv.Itoa(r.NumComponents),
					})
				}

				formatTable([]string{"id", "created", "nodes", "edges", "components"}, rows)

				return nil
			}

			formatJSON(runs)

			return nil
		},
	}
	listCmd.Flags().IntVar(&limit, "limit", 50, "maximum runs to list")

	showCmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one archived run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := archivePipeline(cmd)
			if err != nil {
				return err
			}
			defer p.close()

			run, err := p.runs.GetRun(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if flagFmt == "table" {
				printRunTable(*run)

				return nil
			}

			formatJSON(run)

			return nil
		},
	}

	cmd.AddCommand(listCmd)
	cmd.AddCommand(showCmd)

	return cmd
}

// archivePipeline opens a pipeline and requires the archive to be configured.
func archivePipeline(cmd *cobra.Command) (*pipeline, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	if !cfg.ArchiveEnabled() {
		return nil, fmt.Errorf("run archive requires DATABASE_URL to be set")
	}

	p, err := newPipeline(cmd.Context(), cfg, newLogger(cfg.LogLevel))
	if err != nil {
		return nil, err
	}

	return p, nil
}
