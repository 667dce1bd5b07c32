// Package lead - the contact draft, its prefill bridge and submission.
// A lead is a prospective client's contact request; one draft exists per
// page session and is the only entity that crosses the network boundary.
package lead

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// Kind selects which of the two message templates the relay uses.
type Kind string

const (
	KindTutor Kind = "tutor"
	KindDev   Kind = "dev"
)

// Field names a contact-form field for validation reporting.
type Field string

const (
	FieldName        Field = "name"
	FieldContact     Field = "contact"
	FieldDescription Field = "description"
)

// Draft is the mutable contact request being composed. Name, Contact and
// Description are typed by the user; Format is written only by the
// prefill bridge.
type Draft struct {
	ID          string `json:"id"`
	Kind        Kind   `json:"kind"`
	Name        string `json:"name"`
	Contact     string `json:"contact"`
	Description string `json:"description"`
	Format      string `json:"format"`
}

// NewDraft creates an empty draft for one page session.
func NewDraft(kind Kind) *Draft {
	return &Draft{
		ID:   uuid.NewString(),
		Kind: kind,
	}
}

// Validate returns the required fields that are empty after trimming.
// Format is optional: a lead without a configurator pass is still valid.
func (d *Draft) Validate() []Field {
	var empty []Field
	if strings.TrimSpace(d.Name) == "" {
		empty = append(empty, FieldName)
	}
	if strings.TrimSpace(d.Contact) == "" {
		empty = append(empty, FieldContact)
	}
	if strings.TrimSpace(d.Description) == "" {
		empty = append(empty, FieldDescription)
	}
	return empty
}

// Message is the lead payload handed to the bot relay.
type Message struct {
	Kind        Kind   `json:"type"`
	Format      string `json:"format"`
	Name        string `json:"name"`
	Contact     string `json:"contact"`
	Description string `json:"description"`
}

// Relay forwards a lead to the messaging bot.
type Relay interface {
	Send(ctx context.Context, m Message) error
}
