package domain

import "time"

type CandidateStatus string

const (
	CandidateStatusPending    CandidateStatus = "pending"
	CandidateStatusIgnored    CandidateStatus = "ignored"
	CandidateStatusRegistered CandidateStatus = "registered"
)

// NewProductCandidate é um código detectado na importação que ainda não existe no cadastro
type NewProductCandidate struct {
	ProductCode string          `json:"product_code"`
	SampleSKU   string          `json:"sample_sku"`
	ProductName string          `json:"product_name"`
	Status      CandidateStatus `json:"status"`
	DetectedAt  time.Time       `json:"detected_at"`
}
