package wizard

import (
	"strings"
	"testing"
)

// advanceTo walks the session forward to the step with the given id,
// fully answering every step on the way.
func advanceTo(t *testing.T, s *Session, id StepID) {
	t.Helper()
	for s.Step().ID != id {
		cur := s.Step().ID
		s.DismissIntro()
		fullyAnswer(s.Answers(), cur)
		for s.Step().ID == cur {
			ok, notice := s.GoNext()
			if !ok {
				t.Fatalf("blocked while advancing through %s: %q", cur, notice)
			}
		}
	}
}

func TestGoNext_BlockedOnEmptyIntroduction(t *testing.T) {
	s := NewSession()
	advanceTo(t, s, StepIdentity)
	s.DismissIntro()

	ok, notice := s.GoNext()
	if ok {
		t.Fatalf("goNext passed with empty introduction")
	}
	if notice == "" {
		t.Fatalf("blocked transition carried no notice")
	}
	if s.Cursor().SubIndex != 0 {
		t.Fatalf("blocked transition moved subIndex to %d", s.Cursor().SubIndex)
	}
	if s.Answers().TextAnswered(StepIdentity, FieldIntroduction) {
		t.Fatalf("blocked transition mutated the answer record")
	}
}

func TestGoNext_IdentityClientFocusUngated(t *testing.T) {
	s := NewSession()
	advanceTo(t, s, StepIdentity)
	s.DismissIntro()
	a := s.Answers()
	a.SetText(StepIdentity, FieldIntroduction, "Hi.")
	a.ToggleChoice(StepIdentity, FieldToneWords, "Warm", ToneWordCap)
	a.SetChoice(StepIdentity, FieldSignaturePhrase, SignaturePhrases[1])
	a.SetChoice(StepIdentity, FieldEncouragement, EncouragementPhrases[1])

	for i := 0; i < 4; i++ {
		if ok, notice := s.GoNext(); !ok {
			t.Fatalf("question %d blocked: %q", i, notice)
		}
	}
	// Question 4 (client focus) has no gate: advancing with nothing
	// selected must succeed.
	if s.Cursor().SubIndex != 4 {
		t.Fatalf("subIndex = %d, want 4", s.Cursor().SubIndex)
	}
	if ok, notice := s.GoNext(); !ok {
		t.Fatalf("ungated client-focus question blocked: %q", notice)
	}
	if s.Cursor().SubIndex != 5 {
		t.Fatalf("subIndex = %d, want feedback screen (5)", s.Cursor().SubIndex)
	}
}

func TestGoPrev_ClampedAtFirstStep(t *testing.T) {
	s := NewSession()
	s.GoPrev()
	if s.StepIndex() != 0 {
		t.Fatalf("goPrev below step 0 moved to %d", s.StepIndex())
	}
	s.DismissIntro()
	fullyAnswer(s.Answers(), StepLanguage)
	if ok, _ := s.GoNext(); !ok {
		t.Fatalf("language question 0 blocked")
	}
	s.GoPrev()
	if s.Cursor().SubIndex != 0 || s.StepIndex() != 0 {
		t.Fatalf("goPrev within step landed at step %d sub %d", s.StepIndex(), s.Cursor().SubIndex)
	}
}

func TestReentry_ClearsOnlyThatStep(t *testing.T) {
	s := NewSession()
	advanceTo(t, s, StepMethod)

	if got := s.Progress(StepLanguage); got != 1 {
		t.Fatalf("completed language progress = %v, want 1", got)
	}
	identityProgress := s.Progress(StepIdentity)
	if identityProgress != 1 {
		t.Fatalf("completed identity progress = %v, want 1", identityProgress)
	}

	// Jump back to identity: its answers and cursor reset, language's
	// record and progress stay.
	if !s.JumpTo(1) {
		t.Fatalf("jump to completed identity step refused")
	}
	cur := s.Cursor()
	if !cur.ShowingIntro || cur.SubIndex != 0 {
		t.Fatalf("re-entry cursor = %+v, want intro at sub 0", cur)
	}
	if s.Answers().TextAnswered(StepIdentity, FieldIntroduction) {
		t.Fatalf("re-entry kept the previous introduction answer")
	}
	if got := s.Progress(StepIdentity); got != 0 {
		t.Fatalf("re-entered step progress = %v, want 0 after clearing", got)
	}
	if s.Answers().Choice(StepLanguage, FieldOnboardingLanguage) == "" {
		t.Fatalf("re-entering identity cleared the language step's answers")
	}
	if got := s.Progress(StepLanguage); got != 1 {
		t.Fatalf("other step's progress entry changed: %v", got)
	}
}

func TestJumpTo_RequiresCompletionOrPrecedence(t *testing.T) {
	s := NewSession()
	if s.JumpTo(3) {
		t.Fatalf("jump to an untouched later step allowed")
	}
	advanceTo(t, s, StepIdentity)
	if !s.CanJumpTo(0) {
		t.Fatalf("preceding step not jumpable")
	}
	if s.CanJumpTo(2) {
		t.Fatalf("later incomplete step jumpable")
	}
}

func TestPreview_TweakReturnsWithAdvancedControls(t *testing.T) {
	s := NewSession()
	advanceTo(t, s, StepPreview)
	s.DismissIntro()

	s.SetLiveAxis(AxisWarmth, 9)
	s.SetLiveAxis(AxisDirectness, 3)
	s.CommitTone()
	s.SetCloseness(6)

	if ok, notice := s.GoNext(); !ok {
		t.Fatalf("preview slider screen blocked: %q", notice)
	}
	if s.Cursor().SubIndex != 1 {
		t.Fatalf("subIndex = %d, want decision screen (1)", s.Cursor().SubIndex)
	}

	s.RequestTweak()
	if s.Cursor().SubIndex != 0 {
		t.Fatalf("tweak did not return to the slider screen")
	}
	if !s.AdvancedMode() {
		t.Fatalf("tweak did not force the advanced controls visible")
	}
	if got := s.CommittedTone(); got.Warmth != 9 || got.Directness != 3 {
		t.Fatalf("tweak cleared the committed tone profile: %+v", got)
	}
}

func TestGoNext_DecisionScreenIsInert(t *testing.T) {
	s := NewSession()
	advanceTo(t, s, StepPreview)
	s.DismissIntro()
	s.CommitTone()
	s.SetCloseness(7)
	if ok, _ := s.GoNext(); !ok {
		t.Fatalf("did not reach the decision screen")
	}

	ok, notice := s.GoNext()
	if ok {
		t.Fatalf("GoNext must not advance past the decision screen")
	}
	if notice != "" {
		t.Fatalf("inert decision screen carried a notice: %q", notice)
	}
	if s.Cursor().SubIndex != 1 {
		t.Fatalf("subIndex = %d, want 1 (unchanged)", s.Cursor().SubIndex)
	}
	if s.Accepted() {
		t.Fatalf("GoNext must not mark the preview accepted")
	}
}

func TestPreview_AcceptReachesTerminalScreen(t *testing.T) {
	s := NewSession()
	advanceTo(t, s, StepPreview)
	s.DismissIntro()
	s.CommitTone()
	s.SetCloseness(8)
	if ok, _ := s.GoNext(); !ok {
		t.Fatalf("slider screen blocked")
	}
	s.AcceptPreview()
	if s.Cursor().SubIndex != 2 || !s.Accepted() {
		t.Fatalf("accept did not reach the terminal screen: sub=%d accepted=%v", s.Cursor().SubIndex, s.Accepted())
	}
	// The terminal screen is clamped: goNext stays put.
	if ok, _ := s.GoNext(); !ok {
		t.Fatalf("terminal goNext reported a block")
	}
	if s.Step().ID != StepPreview {
		t.Fatalf("terminal goNext left the preview step")
	}
}

func TestPreview_ClosenessGateBlocksWithNotice(t *testing.T) {
	s := NewSession()
	advanceTo(t, s, StepPreview)
	s.DismissIntro()
	s.CommitTone()

	ok, notice := s.GoNext()
	if ok {
		t.Fatalf("slider screen advanced without a closeness rating")
	}
	if !strings.Contains(notice, "close") {
		t.Fatalf("notice does not name the unmet requirement: %q", notice)
	}
}

func TestSetLiveAxis_NoSideEffectsUntilCommit(t *testing.T) {
	s := NewSession()
	advanceTo(t, s, StepPreview)
	s.DismissIntro()
	first := s.CommitTone()

	s.SetLiveAxis(AxisChallenge, 10)
	if got := s.CommittedTone(); got.Challenge != DefaultTone.Challenge {
		t.Fatalf("dragging mutated the committed profile: %+v", got)
	}
	if p, _ := s.Preview(); p.Message != first.Message {
		t.Fatalf("dragging regenerated the preview")
	}

	second := s.CommitTone()
	if s.CommittedTone().Challenge != 10 {
		t.Fatalf("commit did not adopt the live value")
	}
	if second.Message == "" {
		t.Fatalf("commit produced no preview")
	}
}

func TestSetLiveAxis_ClampedToSliderRange(t *testing.T) {
	s := NewSession()
	s.SetLiveAxis(AxisDirectness, 99)
	s.SetLiveAxis(AxisWarmth, -4)
	got := s.LiveTone()
	if got.Directness != 10 || got.Warmth != 1 {
		t.Fatalf("live tone not clamped: %+v", got)
	}
}

func TestReenterPreview_ResetsToneAndRating(t *testing.T) {
	s := NewSession()
	advanceTo(t, s, StepPreview)
	s.DismissIntro()
	s.SetLiveAxis(AxisDirectness, 9)
	s.CommitTone()
	s.SetCloseness(9)

	// Leave and come back: the preview step's record (sliders, rating,
	// preview) starts over.
	if !s.JumpTo(0) {
		t.Fatalf("jump back to language refused")
	}
	advanceTo(t, s, StepPreview)
	if got := s.CommittedTone(); got != DefaultTone {
		t.Fatalf("re-entered preview kept committed tone %+v", got)
	}
	if s.Closeness() != 0 {
		t.Fatalf("re-entered preview kept closeness %d", s.Closeness())
	}
	if _, ok := s.Preview(); ok {
		t.Fatalf("re-entered preview kept a stale preview state")
	}
}
