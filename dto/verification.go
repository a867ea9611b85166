package dto

// VerificationResult is the verdict returned by the AI validator. The
// fields mirror the JSON schema the model is asked to produce; Error and
// Details are only set on the degraded local-recovery path and never by
// the model itself.
type VerificationResult struct {
	IsVerified      bool    `json:"is_verified"`
	ConfidenceScore string  `json:"confidence_score,omitempty"`
	FeedbackMessage string  `json:"feedback_message"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	ProofDetected   string  `json:"proof_detected,omitempty"`
	Error           string  `json:"error,omitempty"`
	Details         string  `json:"details,omitempty"`
}
