package model

// MatchRequest represents a matching run request.
type MatchRequest struct {
	Preferences PreferenceInput `json:"preferences"`
	Options     *MatchOptions   `json:"options,omitempty"`
}

// MatchOptions represents per-request tuning of a matching run.
type MatchOptions struct {
	Limit int `json:"limit,omitempty"` // matches to personalize and return
	TopK  int `json:"top_k,omitempty"` // semantic retrieval depth
}

// MatchResponse represents the result of a matching run.
type MatchResponse struct {
	Results     []ScoredListing  `json:"results"`
	Preferences *PreferenceModel `json:"preferences,omitempty"`
	Took        int64            `json:"took_ms"`
}

// GenerateRequest represents a listing regeneration request.
type GenerateRequest struct {
	Count int `json:"count,omitempty"`
}

// GenerateResponse reports the outcome of a regeneration.
type GenerateResponse struct {
	Generated    int  `json:"generated"`
	UsedFallback bool `json:"used_fallback"`
	IndexBuilt   bool `json:"index_built"`
}
