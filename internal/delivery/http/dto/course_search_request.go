package dto

// CourseSearchRequest is the POST body form of the course search query.
type CourseSearchRequest struct {
	Query      string  `json:"query"`
	TopK       int     `json:"top_k"`
	Level      string  `json:"level"`
	MinQuality float64 `json:"min_quality"`
}

// RiskScoreRequest names the occupation to profile.
type RiskScoreRequest struct {
	Occupation string `json:"occupation"`
}
