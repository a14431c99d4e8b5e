package domain

import "time"

const (
	NarrativeSourceModel    = "model"
	NarrativeSourceFallback = "fallback"
)

// NarrativeInsights is the LLM-backed plain-text commentary on an analysis
// result. Source records whether a model produced it or the deterministic
// fallback did.
type NarrativeInsights struct {
	Analysis        string `json:"analysis"`
	RiskAssessment  string `json:"risk_assessment"`
	Recommendations string `json:"recommendations"`
	Source          string `json:"source"`
}

type ScenarioAnalysis struct {
	Scenario    string    `json:"scenario"`
	Analysis    string    `json:"analysis"`
	GeneratedAt time.Time `json:"generated_at"`
}
