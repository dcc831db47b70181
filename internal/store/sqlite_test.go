package store

import (
	"context"
	"errors"
	"testing"

	"twinforge/internal/wizard"
)

func TestBeginComplete_RoundTrip(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	ctx := context.Background()

	id, err := s.Begin(ctx, Contact{Name: "Ana", Email: "ana@example.com", Country: "Portugal"})
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if id == "" {
		t.Fatalf("begin returned empty id")
	}

	got, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("get after begin: %v", err)
	}
	if got.Accepted {
		t.Fatalf("fresh profile already accepted")
	}
	if got.Contact.Country != "Portugal" {
		t.Fatalf("contact not stored: %+v", got.Contact)
	}

	res := Result{
		Tone:      wizard.ToneProfile{Directness: 9, Warmth: 2, Challenge: 9},
		Closeness: 8,
		Answers: map[wizard.StepID]map[string]any{
			wizard.StepIdentity: {wizard.FieldIntroduction: "Hi, I'm Ana."},
		},
	}
	if err := s.Complete(ctx, id, res); err != nil {
		t.Fatalf("complete: %v", err)
	}

	got, err = s.Get(ctx, id)
	if err != nil {
		t.Fatalf("get after complete: %v", err)
	}
	if !got.Accepted || got.AcceptedAt.IsZero() {
		t.Fatalf("completion not recorded: %+v", got)
	}
	if got.Tone != res.Tone || got.Closeness != 8 {
		t.Fatalf("tone/closeness mismatch: %+v", got)
	}
	if got.Answers[wizard.StepIdentity][wizard.FieldIntroduction] != "Hi, I'm Ana." {
		t.Fatalf("answers blob mismatch: %v", got.Answers)
	}
}

func TestComplete_UnknownID(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	if err := s.Complete(context.Background(), "nope", Result{}); err == nil {
		t.Fatalf("completing an unknown id succeeded")
	}
}

func TestGet_NotFound(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	if _, err := s.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestList_ReturnsAllProfiles(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	ctx := context.Background()
	a, _ := s.Begin(ctx, Contact{Name: "First"})
	b, _ := s.Begin(ctx, Contact{Name: "Second"})

	ps, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ps) != 2 {
		t.Fatalf("len = %d, want 2", len(ps))
	}
	ids := map[string]bool{ps[0].ID: true, ps[1].ID: true}
	if !ids[a] || !ids[b] {
		t.Fatalf("listed ids %v do not cover %s, %s", ids, a, b)
	}
}
