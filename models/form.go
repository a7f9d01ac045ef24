package models

import (
	"errors"
	"strings"
)

// FormSubmission is the payload of the demo contact form.
type FormSubmission struct {
	// Name is the sender's display name.
	Name string `json:"name"`

	// Email is the sender's address, checked for basic shape only.
	Email string `json:"email"`

	// Message is the free-form body.
	Message string `json:"message"`
}

// FormReceipt acknowledges an accepted submission.
type FormReceipt struct {
	// ReceiptID identifies the accepted submission in the logs.
	ReceiptID string `json:"receiptId"`

	// ReceivedAt is the server-side acceptance time, ISO-8601.
	ReceivedAt string `json:"receivedAt"`
}

// Validate checks the submission for the fields the demo form requires.
// It returns the first problem found.
func (f FormSubmission) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return errors.New("name is required")
	}
	if !validEmail(f.Email) {
		return errors.New("email is malformed")
	}
	if strings.TrimSpace(f.Message) == "" {
		return errors.New("message is required")
	}
	return nil
}

// validEmail applies a shape check, not RFC 5322: one '@' with a
// non-empty local part and a dotted domain.
func validEmail(addr string) bool {
	addr = strings.TrimSpace(addr)
	at := strings.IndexByte(addr, '@')
	if at <= 0 || at != strings.LastIndexByte(addr, '@') {
		return false
	}
	domain := addr[at+1:]
	dot := strings.IndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}
