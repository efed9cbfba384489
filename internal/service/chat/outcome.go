package chat

import (
	"fmt"

	"github.com/zhouzirui/medmind/backend/internal/service/ai"
)

// ConnectionTroubleReply is returned when the generation service fails.
const ConnectionTroubleReply = "I'm having trouble connecting to the AI service right now. Please try again in a moment."

// OutcomeKind classifies a generation attempt.
type OutcomeKind int

const (
	OutcomeGenerated OutcomeKind = iota
	OutcomeMissingCredential
	OutcomeServiceFailure
	OutcomeTimeout
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeGenerated:
		return "generated"
	case OutcomeMissingCredential:
		return "missing_credential"
	case OutcomeServiceFailure:
		return "service_failure"
	case OutcomeTimeout:
		return "timeout"
	default:
		return fmt.Sprintf("outcome(%d)", int(k))
	}
}

// Outcome is the typed result of one chat turn before it becomes reply text.
type Outcome struct {
	Kind   OutcomeKind
	Result ai.Result
	Err    error
	// CredentialEnv is set for OutcomeMissingCredential.
	CredentialEnv string
}

// Reply converts the outcome into the text sent to the user.
func (o Outcome) Reply() string {
	switch o.Kind {
	case OutcomeGenerated:
		return ai.Extract(o.Result)
	case OutcomeMissingCredential:
		return fmt.Sprintf("Server is missing %s. Please set it in your backend .env and restart.", o.CredentialEnv)
	default:
		return ConnectionTroubleReply
	}
}
