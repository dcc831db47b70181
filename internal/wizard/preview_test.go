package wizard

import (
	"strings"
	"testing"
)

func TestCommitPreview_WarmthLedTemplate(t *testing.T) {
	a := NewAnswers()
	p := CommitPreview(ToneProfile{Directness: 3, Warmth: 8, Challenge: 2}, a)
	if !strings.Contains(p.Message, "glad you're here") {
		t.Fatalf("warmth-led template not selected: %q", p.Message)
	}
	if strings.Contains(p.Message, "talk yourself out of it") {
		t.Fatalf("challenge suffix applied below threshold: %q", p.Message)
	}
}

func TestCommitPreview_DirectnessWinsTies(t *testing.T) {
	// At w == d the warmth branch requires strictly greater warmth, so
	// directness takes the tie.
	a := NewAnswers()
	p := CommitPreview(ToneProfile{Directness: 8, Warmth: 8, Challenge: 1}, a)
	if !strings.Contains(p.Message, "not waste your time") {
		t.Fatalf("tie did not fall to the directness template: %q", p.Message)
	}
}

func TestCommitPreview_NeutralDefault(t *testing.T) {
	a := NewAnswers()
	p := CommitPreview(ToneProfile{Directness: 4, Warmth: 4, Challenge: 4}, a)
	if !strings.Contains(p.Message, "Good to meet you") {
		t.Fatalf("neutral template not selected: %q", p.Message)
	}
}

func TestCommitPreview_ChallengeSuffixIsStringSurgery(t *testing.T) {
	a := NewAnswers()
	base := CommitPreview(ToneProfile{Directness: 9, Warmth: 2, Challenge: 1}, a)
	sharp := CommitPreview(ToneProfile{Directness: 9, Warmth: 2, Challenge: 8}, a)

	if !strings.HasPrefix(sharp.Message, strings.TrimSuffix(base.Message, `"`)) {
		t.Fatalf("suffix mutation rewrote the template instead of appending:\nbase:  %q\nsharp: %q", base.Message, sharp.Message)
	}
	if !strings.HasSuffix(sharp.Message, `"`) {
		t.Fatalf("mutated message lost its closing quote: %q", sharp.Message)
	}
	if strings.Count(sharp.Message, "talk yourself out of it") != 1 {
		t.Fatalf("confrontational clause missing or doubled: %q", sharp.Message)
	}
}

func TestCommitPreview_HighDirectnessHighChallenge(t *testing.T) {
	// d=9, w=2, c=9: directness-led message with the challenge suffix,
	// and the demo selector's own directness branch (its warmth check
	// fails first, directness passes).
	a := NewAnswers()
	p := CommitPreview(ToneProfile{Directness: 9, Warmth: 2, Challenge: 9}, a)
	if !strings.Contains(p.Message, "not waste your time") {
		t.Fatalf("directness-led template not selected: %q", p.Message)
	}
	if !strings.Contains(p.Message, "talk yourself out of it") {
		t.Fatalf("challenge suffix not applied at c=9: %q", p.Message)
	}
	if !strings.Contains(p.DemoText, "get to work") {
		t.Fatalf("demo selector did not pick its directness branch: %q", p.DemoText)
	}
}

func TestPreviewDemo_ThresholdsIndependentOfMessageSelector(t *testing.T) {
	a := NewAnswers()
	// c=7 reaches the demo's challenge branch but not the message
	// selector's suffix threshold of 8.
	p := CommitPreview(ToneProfile{Directness: 4, Warmth: 4, Challenge: 7}, a)
	if !strings.Contains(p.DemoText, "avoiding") {
		t.Fatalf("demo challenge branch not selected at c=7: %q", p.DemoText)
	}
	if strings.Contains(p.Message, "talk yourself out of it") {
		t.Fatalf("message suffix applied at c=7: %q", p.Message)
	}
	if !strings.Contains(p.Message, "Good to meet you") {
		t.Fatalf("message selector left its neutral branch: %q", p.Message)
	}
}

func TestPreviewDemo_DefaultUsesSignaturePhrase(t *testing.T) {
	a := NewAnswers()
	a.SetChoice(StepIdentity, FieldSignaturePhrase, "Where did that belief come from?")
	p := CommitPreview(ToneProfile{Directness: 4, Warmth: 4, Challenge: 4}, a)
	if !strings.Contains(p.DemoText, "Where did that belief come from?") {
		t.Fatalf("default demo does not carry the signature phrase: %q", p.DemoText)
	}
}

func TestCommitPreview_WeavesIdentityAndMethodAnswers(t *testing.T) {
	a := NewAnswers()
	a.ToggleChoice(StepIdentity, FieldToneWords, "Playful", ToneWordCap)
	a.SetChoice(StepMethod, FieldCoreBelief, CoreBeliefs[2])
	a.SetChoice(StepMethod, FieldMetaphor, "Lighthouse")

	p := CommitPreview(ToneProfile{Directness: 2, Warmth: 9, Challenge: 2}, a)
	if !strings.Contains(p.Reflection, "playful") {
		t.Fatalf("tone word missing from reflection: %q", p.Reflection)
	}
	if !strings.Contains(p.Reflection, CoreBeliefs[2]) {
		t.Fatalf("belief missing from reflection: %q", p.Reflection)
	}
	if !strings.Contains(p.Reflection, "lighthouse") {
		t.Fatalf("metaphor missing from reflection: %q", p.Reflection)
	}
}

func TestCommitPreview_GradientMatchesTone(t *testing.T) {
	a := NewAnswers()
	p := CommitPreview(ToneProfile{Directness: 9, Warmth: 2, Challenge: 9}, a)
	want := ComputePreviewGradient(9, 2, 9)
	if p.Gradient.Descriptor() != want.Descriptor() {
		t.Fatalf("preview gradient diverges from the pure function:\n%q\n%q", p.Gradient.Descriptor(), want.Descriptor())
	}
}
