package dto

// GapRequest analyzes one profile against a named occupation.
type GapRequest struct {
	RecommendRequest
	Occupation  string `json:"occupation"`
	IncludePath bool   `json:"include_path"`
}
