package domain

type MatchType string

const (
	MatchTypeStartsWith MatchType = "startsWith"
	MatchTypeContains   MatchType = "contains"
)

type ExclusionKeyword struct {
	ID        int       `json:"id"`
	Keyword   string    `json:"keyword"`
	MatchType MatchType `json:"match_type"`
}
