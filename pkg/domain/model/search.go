package model

type SearchResult struct {
	TotalCount int           `json:"total_count"`
	Items      []*Repository `json:"items"`
}

type SearchStatus string

const (
	SearchStatusLoading SearchStatus = "loading"
	SearchStatusLoaded  SearchStatus = "loaded"
	SearchStatusEmpty   SearchStatus = "empty"
	SearchStatusFailed  SearchStatus = "failed"
)

// SearchState is what a search observer sees for the latest submitted query
type SearchState struct {
	Query   string        `json:"query"`
	Status  SearchStatus  `json:"status"`
	Result  *SearchResult `json:"result,omitempty"`
	Message string        `json:"message,omitempty"`
	// Err is the cause of SearchStatusEmpty and SearchStatusFailed
	Err error `json:"-"`
}
