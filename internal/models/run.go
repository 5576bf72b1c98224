package models

import "time"

// Run is one archived analysis run. The run archive stores aggregate results
// only; the graph itself is never persisted.
type Run struct {
	ID            string           `json:"id"`
	InputPath     string           `json:"input_path"`
	Records       int              `json:"records"`
	Nodes         int              `json:"nodes"`
	Edges         int              `json:"edges"`
	AvgPath       *float64         `json:"avg_path"`
	TopCloseness  []ClosenessEntry `json:"top_closeness"`
	NumComponents int              `json:"num_components"`
	Duration      time.Duration    `json:"duration_ns"`
	CreatedAt     time.Time        `json:"created_at"`
}

// Summary extracts the metric aggregates from an archived run.
func (r *Run) Summary() Summary {
	return Summary{
		Nodes:         r.Nodes,
		Edges:         r.Edges,
		AvgPath:       r.AvgPath,
		TopCloseness:  r.TopCloseness,
		NumComponents: r.NumComponents,
	}
}
