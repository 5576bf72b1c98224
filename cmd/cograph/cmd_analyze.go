package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cographio/cograph/internal/models"
)

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Build the co-occurrence graph and compute network metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			log := newLogger(cfg.LogLevel)

			p, err := newPipeline(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer p.close()

			result, err := p.analyze(cmd.Context())
			if err != nil {
				return err
			}

			if flagFmt == "table" {
				printRunTable(result.Run)

				return nil
			}

			formatJSON(result.Run)

			return nil
		},
	}
}

func printRunTable(run models.Run) {
	avg := "undefined"
	if run.AvgPath != nil {
		avg = strconv.FormatFloat(*run.AvgPath, 'f', 4, 64)
	}

	formatTable(
		[]string{"nodes", "edges", "avg_path", "components"},
		[][]string{{
			strconv.Itoa(run.Nodes),
			strconv.Itoa(run.Edges),
			avg,
			strconv.Itoa(run.NumComponents),
		}},
	)

	if len(run.TopCloseness) == 0 {
		return
	}

	fmt.Println()
	rows := make([][]string, 0, len(run.TopCloseness))
	for _, e := range run.TopCloseness {
		rows = append(rows, []string{e.Day, e.Area, strconv.FormatFloat(e.Score, 'f', 4, 64)})
	}

	formatTable([]string{"day", "area", "closeness"}, rows)
}
