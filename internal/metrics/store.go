// Package metrics tracks LLM call metadata for the assistant guardrails'
// cost monitoring. Records live in process memory only.
package metrics

import (
	"sync"
	"time"
)

// ExecutionMetric records metadata for a single LLM execution.
type ExecutionMetric struct {
	AgentName        string    `json:"agentName"`
	Model            string    `json:"model"`
	PromptTokens     int       `json:"promptTokens"`
	CompletionTokens int       `json:"completionTokens"`
	LatencyMS        int64     `json:"latencyMs"`
	Timestamp        time.Time `json:"timestamp"`
}

// Store accumulates execution metrics in memory.
type Store struct {
	mu      sync.Mutex
	records []ExecutionMetric
}

// NewStore creates an empty metrics store.
func NewStore() *Store {
	return &Store{}
}

// Record saves a metric. A zero timestamp is filled with the current time.
func (s *Store) Record(m ExecutionMetric) {
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now().UTC()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, m)
}

// AgentSummary aggregates executions for one agent.
type AgentSummary struct {
	Executions       int   `json:"executions"`
	PromptTokens     int   `json:"promptTokens"`
	CompletionTokens int   `json:"completionTokens"`
	AvgLatencyMS     int64 `json:"avgLatencyMs"`
}

// Summary aggregates all recorded executions, overall and per agent.
type Summary struct {
	Executions       int                     `json:"executions"`
	PromptTokens     int                     `json:"promptTokens"`
	CompletionTokens int                     `json:"completionTokens"`
	ByAgent          map[string]AgentSummary `json:"byAgent"`
}

// Summarize returns aggregate token and latency counts.
func (s *Store) Summarize() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := Summary{ByAgent: make(map[string]AgentSummary)}
	latencyTotals := make(map[string]int64)

	for _, m := range s.records {
		summary.Executions++
		summary.PromptTokens += m.PromptTokens
		summary.CompletionTokens += m.CompletionTokens

		agent := summary.ByAgent[m.AgentName]
		agent.Executions++
		agent.PromptTokens += m.PromptTokens
		agent.CompletionTokens += m.CompletionTokens
		summary.ByAgent[m.AgentName] = agent
		latencyTotals[m.AgentName] += m.LatencyMS
	}
	for name, agent := range summary.ByAgent {
		agent.AvgLatencyMS = latencyTotals[name] / int64(agent.Executions)
		summary.ByAgent[name] = agent
	}
	return summary
}
