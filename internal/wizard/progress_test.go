package wizard

import (
	"math"
	"testing"
)

func fullyAnswer(a *Answers, id StepID) {
	switch id {
	case StepLanguage:
		a.SetChoice(id, FieldOnboardingLanguage, "English")
		a.SetChoice(id, FieldTwinLanguage, "German")
	case StepIdentity:
		a.SetText(id, FieldIntroduction, "Hi, I'm Ana.")
		a.ToggleChoice(id, FieldToneWords, "Warm", ToneWordCap)
		a.SetChoice(id, FieldSignaturePhrase, SignaturePhrases[0])
		a.SetChoice(id, FieldEncouragement, EncouragementPhrases[0])
		a.ToggleChoice(id, FieldClientFocus, "Founders", 0)
	case StepMethod:
		a.SetChoice(id, FieldApproach, Approaches[0])
		a.SetChoice(id, FieldCoreBelief, CoreBeliefs[0])
		a.SetChoice(id, FieldMetaphor, Metaphors[0])
	case StepExample:
		a.SetChoice(id, FieldBreakthrough, Breakthroughs[0])
		a.SetChoice(id, FieldFirstAction, FirstActions[0])
		a.SetText(id, FieldDialogue, "Client: I'm stuck.\nMe: Where, exactly?")
	case StepGuardrails:
		a.ToggleChoice(id, FieldProhibitions, ProhibitionOptions[0], 0)
		a.SetChoice(id, FieldDisclosure, DisclosureMethods[0])
		for _, row := range AutonomyRows {
			a.SetPermission(id, FieldAutonomy, row, PermissionReview)
		}
	case StepPreview:
		a.SetRating(id, FieldCloseness, 7)
	}
}

func TestProgress_FullAnswersYieldOne(t *testing.T) {
	for _, st := range Steps() {
		a := NewAnswers()
		c := NewCalculator(a)
		if got := c.For(st.ID); got != 0 {
			t.Fatalf("%s: empty record progress = %v, want 0", st.ID, got)
		}
		fullyAnswer(a, st.ID)
		if got := c.For(st.ID); math.Abs(got-1) > 1e-9 {
			t.Fatalf("%s: full record progress = %v, want 1", st.ID, got)
		}
	}
}

func TestProgress_AlwaysInUnitInterval(t *testing.T) {
	a := NewAnswers()
	c := NewCalculator(a)
	for _, st := range Steps() {
		fullyAnswer(a, st.ID)
		// Extra answers must not push a fraction past 1.
		a.SetText(st.ID, "unused_extra", "x")
		if got := c.For(st.ID); got < 0 || got > 1 {
			t.Fatalf("%s: progress %v outside [0,1]", st.ID, got)
		}
	}
}

func TestProgress_OtherToggleNeedsText(t *testing.T) {
	a := NewAnswers()
	c := NewCalculator(a)

	// An "other" selection with empty accompanying text is unanswered.
	a.SetText(StepMethod, FieldApproachOther, "   ")
	if got := c.For(StepMethod); got != 0 {
		t.Fatalf("blank other-text counted as answered: progress = %v", got)
	}
	a.SetText(StepMethod, FieldApproachOther, "walk-and-talk coaching")
	if got := c.For(StepMethod); math.Abs(got-1.0/3) > 1e-9 {
		t.Fatalf("other-text answer progress = %v, want 1/3", got)
	}
}

func TestProgress_GuardrailsMatrixIsFractional(t *testing.T) {
	a := NewAnswers()
	c := NewCalculator(a)

	a.ToggleChoice(StepGuardrails, FieldProhibitions, ProhibitionOptions[0], 0)
	a.SetChoice(StepGuardrails, FieldDisclosure, DisclosureMethods[0])
	a.SetPermission(StepGuardrails, FieldAutonomy, AutonomyRows[0], PermissionNever)
	a.SetPermission(StepGuardrails, FieldAutonomy, AutonomyRows[1], PermissionIndependent)

	want := 1.0/3 + 1.0/3 + (2.0/float64(len(AutonomyRows)))/3
	if got := c.For(StepGuardrails); math.Abs(got-want) > 1e-9 {
		t.Fatalf("partial matrix progress = %v, want %v", got, want)
	}
}

func TestProgress_LanguageHalves(t *testing.T) {
	a := NewAnswers()
	c := NewCalculator(a)
	a.SetChoice(StepLanguage, FieldOnboardingLanguage, "French")
	if got := c.For(StepLanguage); got != 0.5 {
		t.Fatalf("one of two choices: progress = %v, want 0.5", got)
	}
}

func TestProgress_MemoInvalidatedByMutation(t *testing.T) {
	a := NewAnswers()
	c := NewCalculator(a)
	if got := c.For(StepLanguage); got != 0 {
		t.Fatalf("initial progress = %v, want 0", got)
	}
	a.SetChoice(StepLanguage, FieldOnboardingLanguage, "English")
	if got := c.For(StepLanguage); got != 0.5 {
		t.Fatalf("progress after mutation = %v, want 0.5 (memo not invalidated?)", got)
	}
	a.Clear(StepLanguage)
	if got := c.For(StepLanguage); got != 0 {
		t.Fatalf("progress after clear = %v, want 0", got)
	}
}
