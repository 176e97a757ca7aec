package types

// ChainDetail is the resolved view of a chain identifier returned by the
// resolver and the HTTP API.
type ChainDetail struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	ChainID     uint64 `json:"chain_id"`
	Named       bool   `json:"named"`
	Legacy      bool   `json:"legacy"`
	ExplorerURL string `json:"explorer_url,omitempty"`
	ExplorerAPI string `json:"explorer_api,omitempty"`
}

// Job represents a scheduled job configuration
type Job struct {
	Name        string `json:"name"`
	Schedule    string `json:"schedule"`
	TaskName    string `json:"task"`
	Enabled     bool   `json:"enabled"`
	Description string `json:"description"`
}

// JobConfig represents the job scheduler configuration
type JobConfig struct {
	MaxConcurrent int   `json:"max_concurrent"`
	Predefined    []Job `json:"predefined"`
}
