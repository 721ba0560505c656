package pattern

// Summary represents the overall verdict and its counts.
type Summary struct {
	Label   string        `json:"label"`
	Passed  bool          `json:"passed"`
	Metrics []SummaryItem `json:"metrics"`
}

// SummaryItem is a single metric in a summary.
type SummaryItem struct {
	Label string `json:"label"` // e.g., "Passed", "Failed", "Skipped"
	Value string `json:"value"` // formatted value
	Kind  string `json:"kind"`  // "success", "error", "warning", "info"; affects coloring
}

func (s *Summary) Type() PatternType { return PatternTypeSummary }
