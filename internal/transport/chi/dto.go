package chi

import (
	"github.com/kailas-cloud/resrank/internal/domain/ranking"
	rankinguc "github.com/kailas-cloud/resrank/internal/usecase/ranking"
)

// RankResponse is the JSON body of POST /api/v1/rank.
type RankResponse struct {
	RunID    string        `json:"run_id"`
	Results  []RankedItem  `json:"results"`
	Top      *RankedItem   `json:"top,omitempty"`
	Warnings []WarningItem `json:"warnings"`
	Keywords []KeywordItem `json:"keywords"`
}

// RankedItem is one row of the ranking table.
type RankedItem struct {
	Rank         int     `json:"rank"`
	Resume       string  `json:"resume"`
	Score        float64 `json:"score"`
	DisplayScore string  `json:"display_score"`
}

// WarningItem reports an upload that was skipped.
type WarningItem struct {
	Resume  string `json:"resume"`
	Message string `json:"message"`
}

// KeywordItem is a keyword with its frequency across readable resumes.
type KeywordItem struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// HealthResponse is the JSON body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func rankedToDTO(r ranking.Ranked) RankedItem {
	return RankedItem{
		Rank:         r.Rank(),
		Resume:       r.Name(),
		Score:        r.Score(),
		DisplayScore: r.DisplayScore(),
	}
}

func reportToDTO(rep *rankinguc.Report) RankResponse {
	resp := RankResponse{
		RunID:    rep.RunID,
		Results:  make([]RankedItem, len(rep.Results)),
		Warnings: make([]WarningItem, len(rep.Warnings)),
		Keywords: make([]KeywordItem, len(rep.Keywords)),
	}
	for i, r := range rep.Results {
		resp.Results[i] = rankedToDTO(r)
	}
	if top, ok := rep.Top(); ok {
		t := rankedToDTO(top)
		resp.Top = &t
	}
	for i, w := range rep.Warnings {
		resp.Warnings[i] = WarningItem{Resume: w.Name, Message: w.Message()}
	}
	for i, k := range rep.Keywords {
		resp.Keywords[i] = KeywordItem{Term: k.Term, Count: k.Count}
	}
	return resp
}
