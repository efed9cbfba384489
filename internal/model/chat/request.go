package chat

import "strings"

// Request is the inbound chat payload. Every field is optional on the wire.
type Request struct {
	Message string `json:"message"`
	Name    string `json:"name"`
	Mood    string `json:"mood"`
}

// Normalize trims surrounding whitespace from every field.
func (r Request) Normalize() Request {
	return Request{
		Message: strings.TrimSpace(r.Message),
		Name:    strings.TrimSpace(r.Name),
		Mood:    strings.TrimSpace(r.Mood),
	}
}

// Reply wraps the text returned to the caller.
type Reply struct {
	Reply string `json:"reply"`
}
