package wizard

// Calculator derives per-step completion fractions from the answer store.
// Results are memoized per step; the store's dirty hook invalidates them.
type Calculator struct {
	answers *Answers
	memo    map[StepID]float64
	valid   map[StepID]bool
}

func NewCalculator(a *Answers) *Calculator {
	c := &Calculator{
		answers: a,
		memo:    map[StepID]float64{},
		valid:   map[StepID]bool{},
	}
	prev := a.onDirty
	a.onDirty = func(id StepID) {
		c.valid[id] = false
		if prev != nil {
			prev(id)
		}
	}
	return c
}

// For returns the step's completion fraction in [0,1].
func (c *Calculator) For(id StepID) float64 {
	if c.valid[id] {
		return c.memo[id]
	}
	v := clamp01(c.compute(id))
	c.memo[id] = v
	c.valid[id] = true
	return v
}

func (c *Calculator) compute(id StepID) float64 {
	a := c.answers
	switch id {
	case StepLanguage:
		n := 0
		if a.Choice(id, FieldOnboardingLanguage) != "" {
			n++
		}
		if a.Choice(id, FieldTwinLanguage) != "" {
			n++
		}
		return float64(n) / 2

	case StepIdentity:
		n := 0
		if a.TextAnswered(id, FieldIntroduction) {
			n++
		}
		if a.multiAnswered(id, FieldToneWords, FieldToneWordsOther) {
			n++
		}
		if a.choiceAnswered(id, FieldSignaturePhrase, FieldSignaturePhraseOther) {
			n++
		}
		if a.choiceAnswered(id, FieldEncouragement, FieldEncouragementOther) {
			n++
		}
		if len(a.Choices(id, FieldClientFocus)) > 0 {
			n++
		}
		return float64(n) / 5

	case StepMethod:
		n := 0
		if a.choiceAnswered(id, FieldApproach, FieldApproachOther) {
			n++
		}
		if a.choiceAnswered(id, FieldCoreBelief, FieldCoreBeliefOther) {
			n++
		}
		if a.choiceAnswered(id, FieldMetaphor, FieldMetaphorOther) {
			n++
		}
		return float64(n) / 3

	case StepExample:
		n := 0
		if a.choiceAnswered(id, FieldBreakthrough, FieldBreakthroughOther) {
			n++
		}
		if a.choiceAnswered(id, FieldFirstAction, FieldFirstActionOther) {
			n++
		}
		if a.TextAnswered(id, FieldDialogue) {
			n++
		}
		return float64(n) / 3

	case StepGuardrails:
		v := 0.0
		if a.multiAnswered(id, FieldProhibitions, FieldProhibitionsOther) {
			v += 1.0 / 3
		}
		if a.choiceAnswered(id, FieldDisclosure, FieldDisclosureOther) {
			v += 1.0 / 3
		}
		set := a.PermissionsSet(id, FieldAutonomy, AutonomyRows)
		v += float64(set) / float64(len(AutonomyRows)) / 3
		return v

	case StepPreview:
		if a.Rating(id, FieldCloseness) > 0 {
			return 1
		}
		return 0
	}

	// Steps without a bespoke formula count as done unless they are last.
	if len(Steps()) > 0 && Steps()[len(Steps())-1].ID == id {
		return 0
	}
	return 1
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
