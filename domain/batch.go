package domain

// RowError reports one rejected row of a batch upload. Two shapes share
// the struct: a validation rejection fills Data and Errors, a row that
// could not even be parsed into a candidate fills Error instead.
type RowError struct {
	Row    int        `json:"row"`
	Data   *Candidate `json:"data,omitempty"`
	Errors []string   `json:"errors,omitempty"`
	Error  string     `json:"error,omitempty"`
}

// BatchSummary is the per-upload result returned to the caller. It is
// built during one import call and never persisted.
type BatchSummary struct {
	TotalRows      int        `json:"totalRows"`
	ValidRecords   int        `json:"validRecords"`
	InvalidRecords int        `json:"invalidRecords"`
	Errors         []RowError `json:"errors"`
}
