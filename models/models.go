package models

import (
	"datachat/charts"
	"datachat/dataset"
	"datachat/response"
	"datachat/stats"
)

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

type ChatResponse struct {
	Response string             `json:"response"`
	Result   *response.Envelope `json:"result,omitempty"`
}

// AnalysisPlan is what the model returns for a dataset question: a
// conversational answer, zero or more statistics to compute and an
// optional chart spec. A plan with only an answer is a plain chat
// reply.
type AnalysisPlan struct {
	Answer      string          `json:"answer,omitempty"`
	Operations  []stats.Request `json:"operations,omitempty"`
	ChartSpec   charts.Spec     `json:"chart_spec,omitempty"`
	Description string          `json:"description,omitempty"`
}

// DatasetRequest carries already-parsed rows. Columns preserves the
// caller's column order; when omitted it is derived from the first row.
type DatasetRequest struct {
	Columns []string      `json:"columns,omitempty"`
	Rows    []dataset.Row `json:"rows" binding:"required"`
}

// SQLDatasetRequest loads a dataset from the configured SQL Server.
// MaxRows caps how many result rows are kept; zero means no cap.
type SQLDatasetRequest struct {
	Query   string `json:"query" binding:"required"`
	MaxRows int    `json:"max_rows,omitempty"`
}

type UploadResponse struct {
	SessionID string                  `json:"session_id"`
	Rows      int                     `json:"rows"`
	Columns   []string                `json:"columns"`
	Profile   []dataset.ColumnProfile `json:"profile"`
}

type ProfileResponse struct {
	SessionID string                  `json:"session_id"`
	Rows      int                     `json:"rows"`
	Profile   []dataset.ColumnProfile `json:"profile"`
}

type ChatHistory struct {
	Message   string `json:"message"`
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}
