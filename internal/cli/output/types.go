package output

// RunOutput is the JSON document written by `aoc run`.
type RunOutput struct {
	RunID   string      `json:"run_id"`
	Results []DayResult `json:"results"`
}

// DayResult holds one day's answers.
type DayResult struct {
	Day     int    `json:"day"`
	Title   string `json:"title"`
	Part1   string `json:"part1,omitempty"`
	Part2   string `json:"part2,omitempty"`
	Part1MS int64  `json:"part1_ms"`
	Part2MS int64  `json:"part2_ms"`
	Error   string `json:"error,omitempty"`
}

// ListOutput is the JSON document written by `aoc list`.
type ListOutput struct {
	InputDir string    `json:"input_dir"`
	Days     []DayInfo `json:"days"`
}

// DayInfo describes a registered day and its input file.
type DayInfo struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	InputPath   string `json:"input_path"`
	InputExists bool   `json:"input_exists"`
}

// VerifyOutput is the JSON document written by `aoc verify`.
type VerifyOutput struct {
	RunID   string        `json:"run_id"`
	Checks  []VerifyCheck `json:"checks"`
	Summary VerifySummary `json:"summary"`
}

// VerifyCheck compares one part's answer with its expected value.
type VerifyCheck struct {
	Day      int    `json:"day"`
	Part     int    `json:"part"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
}

// VerifySummary counts check outcomes.
type VerifySummary struct {
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}
