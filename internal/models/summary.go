package models

// ClosenessEntry is one ranked closeness-centrality result. Day is the node's
// day rendered with DayLayout.
type ClosenessEntry struct {
	Day   string  `json:"day"`
	Area  string  `json:"area"`
	Score float64 `json:"score"`
}

// Summary holds the aggregate network metrics for one analysis.
// AvgPath is nil when the metric is undefined (graphs with at most one node);
// it marshals as JSON null in that case rather than a fabricated zero.
type Summary struct {
	Nodes         int              `json:"nodes"`
	Edges         int              `json:"edges"`
	AvgPath       *float64         `json:"avg_path"`
	TopCloseness  []ClosenessEntry `json:"top_closeness"`
	NumComponents int              `json:"num_components"`
}

// DegreeBucket is one row of the degree distribution: Count nodes have
// exactly Degree neighbors.
type DegreeBucket struct {
	Degree int `json:"degree"`
	Count  int `json:"count"`
}
