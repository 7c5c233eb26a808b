package codec

import (
	"unicode/utf8"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 1000
	MaxProposalLength    = 500
	MaxTermsLength       = 1000
	MinTimeoutBlocks     = 144   // 1 day
	MaxTimeoutBlocks     = 52560 // 1 year
)

// ValidationError names the first constraint a request violated.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func lengthBetween(s string, minLen, maxLen int) bool {
	n := utf8.RuneCountInString(s)
	return n >= minLen && n <= maxLen
}

// ValidateJobPost checks the fields of a new job posting.
func ValidateJobPost(title, description string, amount btcutil.Amount, timeoutBlocks uint32) error {
	switch {
	case !lengthBetween(title, 1, MaxTitleLength):
		return invalid("title", "Title must be between 1 and 100 characters")
	case !lengthBetween(description, 1, MaxDescriptionLength):
		return invalid("description", "Description must be between 1 and 1000 characters")
	case amount <= 0:
		return invalid("amount", "Amount must be positive")
	case timeoutBlocks < MinTimeoutBlocks || timeoutBlocks > MaxTimeoutBlocks:
		return invalid("timeout_blocks", "Timeout must be between 144 blocks (1 day) and 52560 blocks (1 year)")
	}
	return nil
}

// ValidateJobTerms checks the optional requirements and deliverables of a posting.
func ValidateJobTerms(requirements, deliverables string) error {
	switch {
	case utf8.RuneCountInString(requirements) > MaxTermsLength:
		return invalid("requirements", "Requirements must be at most 1000 characters")
	case utf8.RuneCountInString(deliverables) > MaxTermsLength:
		return invalid("deliverables", "Deliverables must be at most 1000 characters")
	}
	return nil
}

// ValidateJobApplication checks the fields of a job application.
func ValidateJobApplication(jobID chainhash.Hash, proposal string) error {
	switch {
	case jobID == (chainhash.Hash{}):
		return invalid("job_id", "Invalid job ID")
	case !lengthBetween(proposal, 1, MaxProposalLength):
		return invalid("proposal", "Proposal must be between 1 and 500 characters")
	}
	return nil
}
