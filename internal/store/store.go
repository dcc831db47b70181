// Package store persists submitted coaching profiles in a local SQLite
// database.
package store

import (
	"context"
	"encoding/json"
	"time"

	"twinforge/internal/wizard"
)

// Contact is the identity payload collected before the stepper begins.
type Contact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Country string `json:"country"`
}

// Result is everything captured at the terminal preview screen.
type Result struct {
	Tone      wizard.ToneProfile               `json:"tone"`
	Closeness int                              `json:"closeness"`
	Answers   map[wizard.StepID]map[string]any `json:"answers"`
}

// Profile is one stored onboarding run.
type Profile struct {
	ID         string                           `json:"id"`
	CreatedAt  time.Time                        `json:"created_at"`
	AcceptedAt time.Time                        `json:"accepted_at,omitempty"`
	Accepted   bool                             `json:"accepted"`
	Contact    Contact                          `json:"contact"`
	Tone       wizard.ToneProfile               `json:"tone"`
	Closeness  int                              `json:"closeness"`
	Answers    map[wizard.StepID]map[string]any `json:"answers,omitempty"`
}

// ProfileSink is the submit boundary the wizard writes through. Begin is
// invoked with the contact payload before the stepper starts; Complete
// with the accepted result at the terminal preview screen.
type ProfileSink interface {
	Begin(ctx context.Context, c Contact) (id string, err error)
	Complete(ctx context.Context, id string, res Result) error
}

func marshalAnswers(answers map[wizard.StepID]map[string]any) (string, error) {
	if len(answers) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(answers)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalAnswers(blob string) (map[wizard.StepID]map[string]any, error) {
	if blob == "" || blob == "{}" {
		return nil, nil
	}
	var out map[wizard.StepID]map[string]any
	if err := json.Unmarshal([]byte(blob), &out); err != nil {
		return nil, err
	}
	return out, nil
}
