package wizard

// StepID identifies one of the six top-level wizard sections.
type StepID string

const (
	StepLanguage   StepID = "language"
	StepIdentity   StepID = "identity"
	StepMethod     StepID = "method"
	StepExample    StepID = "example"
	StepGuardrails StepID = "guardrails"
	StepPreview    StepID = "preview"
)

// Step is an ordered wizard section. The order is fixed for a session.
type Step struct {
	ID    StepID
	Label string
}

// Steps returns the wizard's step sequence in its fixed order.
func Steps() []Step {
	return []Step{
		{ID: StepLanguage, Label: "Language"},
		{ID: StepIdentity, Label: "Identity"},
		{ID: StepMethod, Label: "Method"},
		{ID: StepExample, Label: "Example"},
		{ID: StepGuardrails, Label: "Guardrails"},
		{ID: StepPreview, Label: "Preview"},
	}
}

// QuestionKind describes how a question is asked and stored.
type QuestionKind int

const (
	QuestionText QuestionKind = iota
	QuestionSingle
	QuestionMulti
	QuestionMatrix
	QuestionSliders
	QuestionDecision
)

// Question describes one numbered sub-step of a step.
//
// Single-select questions may carry an OtherField: a free-text override
// presented alongside the fixed options. Multi-select questions with a
// non-zero Cap refuse toggles past that many selections.
type Question struct {
	Kind       QuestionKind
	Prompt     string
	Field      string
	OtherField string
	Options    []string
	Cap        int
	Rows       []string
}

// Field keys, per step.
const (
	FieldOnboardingLanguage = "onboarding_language"
	FieldTwinLanguage       = "twin_language"

	FieldIntroduction         = "introduction"
	FieldToneWords            = "tone_words"
	FieldToneWordsOther       = "tone_words_other"
	FieldSignaturePhrase      = "signature_phrase"
	FieldSignaturePhraseOther = "signature_phrase_other"
	FieldEncouragement        = "encouragement"
	FieldEncouragementOther   = "encouragement_other"
	FieldClientFocus          = "client_focus"

	FieldApproach        = "approach"
	FieldApproachOther   = "approach_other"
	FieldCoreBelief      = "core_belief"
	FieldCoreBeliefOther = "core_belief_other"
	FieldMetaphor        = "metaphor"
	FieldMetaphorOther   = "metaphor_other"

	FieldBreakthrough      = "breakthrough"
	FieldBreakthroughOther = "breakthrough_other"
	FieldFirstAction       = "first_action"
	FieldFirstActionOther  = "first_action_other"
	FieldDialogue          = "dialogue"

	FieldProhibitions      = "prohibitions"
	FieldProhibitionsOther = "prohibitions_other"
	FieldDisclosure        = "disclosure"
	FieldDisclosureOther   = "disclosure_other"
	FieldAutonomy          = "autonomy"

	FieldCloseness = "closeness"
)

// ToneWordCap bounds the identity step's tone-word multi-select.
const ToneWordCap = 2

var (
	Languages = []string{"English", "German", "French", "Spanish", "Portuguese", "Italian", "Dutch", "Polish"}

	ToneWords = []string{"Warm", "Direct", "Playful", "Calm", "Energizing", "No-nonsense", "Thoughtful", "Bold"}

	SignaturePhrases = []string{
		"What would you do if you trusted yourself?",
		"Let's slow this down for a second.",
		"Where do you feel that in your body?",
		"What's the smallest next step?",
	}

	EncouragementPhrases = []string{
		"You've done harder things than this.",
		"I'm not going anywhere.",
		"That took courage to say.",
		"Look how far you've already come.",
	}

	ClientFocusOptions = []string{"Founders", "Executives", "Career changers", "Teams", "Creatives", "Parents"}

	Approaches = []string{"Solution-focused", "Somatic", "Cognitive-behavioral", "Systemic", "Intuitive"}

	CoreBeliefs = []string{
		"People already have the answers within them",
		"Change happens in small, honest steps",
		"Discomfort is where the growth lives",
		"Safety comes first, always",
	}

	Metaphors = []string{"Mountain guide", "Mirror", "Training partner", "Lighthouse", "Gardener"}

	Breakthroughs = []string{
		"A client finally said no to something",
		"A client saw a pattern they'd been blind to",
		"A client made the scary phone call",
		"A client forgave themselves",
	}

	FirstActions = []string{
		"Name the real problem out loud",
		"A tiny experiment before next session",
		"Write the unsent letter",
		"One honest conversation",
	}

	ProhibitionOptions = []string{
		"No medical or psychological diagnoses",
		"No false promises",
		"Never shame the client",
		"Don't push past a clear no",
		"No advice on legal or financial matters",
	}

	DisclosureMethods = []string{
		"Name it immediately",
		"Weave it into the next exchange",
		"Ask permission first",
		"Only when asked directly",
	}

	AutonomyRows = []string{
		"Scheduling sessions",
		"Adjusting pricing",
		"Changing the coaching plan",
		"Reaching out between sessions",
		"Responding to a crisis",
	}
)

var stepQuestions = map[StepID][]Question{
	StepLanguage: {
		{Kind: QuestionSingle, Prompt: "Which language should onboarding use?", Field: FieldOnboardingLanguage, Options: Languages},
		{Kind: QuestionSingle, Prompt: "Which language should your twin speak?", Field: FieldTwinLanguage, Options: Languages},
	},
	StepIdentity: {
		{Kind: QuestionText, Prompt: "How do you introduce yourself to a new client?", Field: FieldIntroduction},
		{Kind: QuestionMulti, Prompt: "Pick up to two words for your tone", Field: FieldToneWords, OtherField: FieldToneWordsOther, Options: ToneWords, Cap: ToneWordCap},
		{Kind: QuestionSingle, Prompt: "Which phrase sounds most like you?", Field: FieldSignaturePhrase, OtherField: FieldSignaturePhraseOther, Options: SignaturePhrases},
		{Kind: QuestionSingle, Prompt: "How do you encourage someone who is stuck?", Field: FieldEncouragement, OtherField: FieldEncouragementOther, Options: EncouragementPhrases},
		{Kind: QuestionMulti, Prompt: "Who are your clients?", Field: FieldClientFocus, Options: ClientFocusOptions},
	},
	StepMethod: {
		{Kind: QuestionSingle, Prompt: "Which approach is closest to yours?", Field: FieldApproach, OtherField: FieldApproachOther, Options: Approaches},
		{Kind: QuestionSingle, Prompt: "Which belief anchors your work?", Field: FieldCoreBelief, OtherField: FieldCoreBeliefOther, Options: CoreBeliefs},
		{Kind: QuestionSingle, Prompt: "If your coaching were a metaphor, it would be a…", Field: FieldMetaphor, OtherField: FieldMetaphorOther, Options: Metaphors},
	},
	StepExample: {
		{Kind: QuestionSingle, Prompt: "What did a recent breakthrough look like?", Field: FieldBreakthrough, OtherField: FieldBreakthroughOther, Options: Breakthroughs},
		{Kind: QuestionSingle, Prompt: "What was the first action that followed?", Field: FieldFirstAction, OtherField: FieldFirstActionOther, Options: FirstActions},
		{Kind: QuestionText, Prompt: "Write a few lines of dialogue the way you'd actually say them", Field: FieldDialogue},
	},
	StepGuardrails: {
		{Kind: QuestionMulti, Prompt: "What must your twin never do?", Field: FieldProhibitions, OtherField: FieldProhibitionsOther, Options: ProhibitionOptions},
		{Kind: QuestionSingle, Prompt: "How should your twin disclose that it is a twin?", Field: FieldDisclosure, OtherField: FieldDisclosureOther, Options: DisclosureMethods},
		{Kind: QuestionMatrix, Prompt: "How independently may your twin act?", Field: FieldAutonomy, Rows: AutonomyRows},
	},
	StepPreview: {
		{Kind: QuestionSliders, Prompt: "Tune the tone until the preview sounds like you", Field: FieldCloseness},
		{Kind: QuestionDecision, Prompt: "What do you think?"},
		{Kind: QuestionDecision, Prompt: "Your twin's voice is set"},
	},
}

// StepQuestions returns the numbered sub-steps of a step, in order.
// The trailing feedback screen of non-preview steps is not included.
func StepQuestions(id StepID) []Question {
	return stepQuestions[id]
}

// questionCount is the Q used by the progress formulas.
func questionCount(id StepID) int {
	switch id {
	case StepLanguage:
		return 2
	case StepIdentity:
		return 5
	case StepMethod, StepExample, StepGuardrails:
		return 3
	case StepPreview:
		return 1
	}
	return 0
}

// lastSubIndex is the final sub-index of a step.
//
// For most steps that is the feedback screen following the questions. The
// language step's feedback shares index 2, and the preview step's indices
// are slider screen, decision screen, accepted screen.
func lastSubIndex(id StepID) int {
	switch id {
	case StepLanguage:
		return 2
	case StepPreview:
		return 2
	default:
		return questionCount(id)
	}
}
