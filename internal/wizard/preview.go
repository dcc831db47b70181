package wizard

import (
	"fmt"
	"strings"
)

// PreviewState is the rendered preview derived from a committed tone
// profile plus the identity and method answers. It is never authoritative;
// recomputing from the same inputs reproduces it exactly.
type PreviewState struct {
	Message    string
	Reflection string
	DemoText   string
	Gradient   GradientSpec
}

// ToneProfile is the (directness, warmth, challenge) triple driving
// preview synthesis. Axes range over [1,10].
type ToneProfile struct {
	Directness int
	Warmth     int
	Challenge  int
}

// DefaultTone is the slider starting position.
var DefaultTone = ToneProfile{Directness: 5, Warmth: 5, Challenge: 5}

func (t ToneProfile) clamped() ToneProfile {
	return ToneProfile{
		Directness: clampAxis(t.Directness),
		Warmth:     clampAxis(t.Warmth),
		Challenge:  clampAxis(t.Challenge),
	}
}

func clampAxis(v int) int {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}

// previewInputs are the answer fragments woven into the preview text.
type previewInputs struct {
	toneWord string
	phrase   string
	belief   string
	metaphor string
}

func gatherPreviewInputs(a *Answers) previewInputs {
	in := previewInputs{
		toneWord: "grounded",
		phrase:   SignaturePhrases[0],
		belief:   CoreBeliefs[0],
		metaphor: Metaphors[0],
	}
	if words := a.Choices(StepIdentity, FieldToneWords); len(words) > 0 {
		in.toneWord = strings.ToLower(words[0])
	} else if a.TextAnswered(StepIdentity, FieldToneWordsOther) {
		in.toneWord = strings.ToLower(strings.TrimSpace(a.Text(StepIdentity, FieldToneWordsOther)))
	}
	if p := a.Choice(StepIdentity, FieldSignaturePhrase); p != "" {
		in.phrase = p
	} else if a.TextAnswered(StepIdentity, FieldSignaturePhraseOther) {
		in.phrase = strings.TrimSpace(a.Text(StepIdentity, FieldSignaturePhraseOther))
	}
	if b := a.Choice(StepMethod, FieldCoreBelief); b != "" {
		in.belief = b
	} else if a.TextAnswered(StepMethod, FieldCoreBeliefOther) {
		in.belief = strings.TrimSpace(a.Text(StepMethod, FieldCoreBeliefOther))
	}
	if m := a.Choice(StepMethod, FieldMetaphor); m != "" {
		in.metaphor = m
	} else if a.TextAnswered(StepMethod, FieldMetaphorOther) {
		in.metaphor = strings.TrimSpace(a.Text(StepMethod, FieldMetaphorOther))
	}
	return in
}

// challengeSuffix is appended inside the message's closing quote when the
// challenge axis reaches 8. The swap is literal string surgery on the
// fixed `."` suffix every template ends with, not a separate template.
const challengeSuffix = ` And I won't let you talk yourself out of it."`

// CommitPreview synthesizes the preview for a committed tone profile.
//
// The message selector and the demo selector branch on different
// thresholds on purpose; they came out of tuning separately and unifying
// them changes the preview for several real profiles.
func CommitPreview(t ToneProfile, a *Answers) PreviewState {
	t = t.clamped()
	in := gatherPreviewInputs(a)

	var message, reflection string
	switch {
	case t.Warmth >= 7 && t.Warmth > t.Directness:
		message = `"I'm really glad you're here. Whatever brought you to this point, we'll make sense of it together, at your pace."`
		reflection = fmt.Sprintf("Hear the %s tone carrying it? %s: your twin leads with that, the way a %s would.",
			in.toneWord, in.belief, strings.ToLower(in.metaphor))
	case t.Directness >= 7 && t.Directness >= t.Warmth:
		message = `"Let's not waste your time. Tell me what's actually going on, and we'll deal with it."`
		reflection = fmt.Sprintf("No detours, just a %s voice that believes %s.",
			in.toneWord, firstRuneLower(in.belief))
	default:
		message = `"Good to meet you. Tell me what brought you here today, and we'll take it from there."`
		reflection = fmt.Sprintf("Balanced and %s, anchored in \"%s\".", in.toneWord, in.phrase)
	}

	if t.Challenge >= 8 {
		message = strings.TrimSuffix(message, `"`) + challengeSuffix
	}

	return PreviewState{
		Message:    message,
		Reflection: reflection,
		DemoText:   previewDemo(t, in),
		Gradient:   ComputePreviewGradient(float64(t.Directness), float64(t.Warmth), float64(t.Challenge)),
	}
}

// previewDemo picks the short demo line. Its thresholds intentionally
// differ from the message selector's.
func previewDemo(t ToneProfile, in previewInputs) string {
	switch {
	case t.Warmth >= 7:
		return `"Take a breath. We have time for this."`
	case t.Directness >= 7:
		return `"Let's get to work. What's the real obstacle?"`
	case t.Challenge >= 7:
		return `"What are you avoiding right now?"`
	default:
		return fmt.Sprintf(`"%s"`, in.phrase)
	}
}

func firstRuneLower(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
