package domain

import "time"

// WorkloadAnalysis is the structured report returned by the AI collaborator
// for an employees+tasks snapshot.
type WorkloadAnalysis struct {
	Summary         string   `json:"summary"`
	BurnoutRisk     []string `json:"burnoutRisk"` // Employee names
	EfficiencyScore int      `json:"efficiencyScore"`
	Recommendations []string `json:"recommendations"`
}

// ProductAnalysis is the structured report for a single product or an
// aggregated company view.
type ProductAnalysis struct {
	Summary         string   `json:"summary"`
	FutureOutlook   string   `json:"futureOutlook"`
	PredictedGrowth float64  `json:"predictedGrowth"` // Percentage
	KeyRisks        []string `json:"keyRisks"`
}

// ChatRole identifies a chat message author.
type ChatRole string

const (
	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)

// ChatMessage is one turn in the assistant conversation.
type ChatMessage struct {
	Role      ChatRole  `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
