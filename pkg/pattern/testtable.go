package pattern

// TestTable represents test results with status and timing.
type TestTable struct {
	Label   string          `json:"label"`
	Results []TestTableItem `json:"results"`
}

// TestTableItem is a single test case result.
type TestTableItem struct {
	Name     string `json:"name"`
	Status   string `json:"status"`             // "pass", "fail", "skip"
	Duration string `json:"duration,omitempty"` // formatted duration
	Details  string `json:"details,omitempty"`  // error message or fault trace
}

func (t *TestTable) Type() PatternType { return PatternTypeTestTable }
