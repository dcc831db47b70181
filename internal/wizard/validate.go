package wizard

// validateQuestion gates a forward transition off the given question
// index. It returns "" when the transition may proceed, otherwise a
// notice naming the unmet requirement.
//
// The identity step's fifth question (client focus) is deliberately
// ungated; advancing past it without an answer is allowed.
func validateQuestion(a *Answers, id StepID, idx int) string {
	switch id {
	case StepLanguage:
		switch idx {
		case 0:
			if a.Choice(id, FieldOnboardingLanguage) == "" {
				return "Choose a language for onboarding to continue."
			}
		case 1:
			if a.Choice(id, FieldTwinLanguage) == "" {
				return "Choose the language your twin should speak."
			}
		}

	case StepIdentity:
		switch idx {
		case 0:
			if !a.TextAnswered(id, FieldIntroduction) {
				return "Write a few words about how you introduce yourself."
			}
		case 1:
			if !a.multiAnswered(id, FieldToneWords, FieldToneWordsOther) {
				return "Pick at least one tone word, or describe your own."
			}
		case 2:
			if !a.choiceAnswered(id, FieldSignaturePhrase, FieldSignaturePhraseOther) {
				return "Pick a phrase, or write one of your own."
			}
		case 3:
			if !a.choiceAnswered(id, FieldEncouragement, FieldEncouragementOther) {
				return "Pick an encouragement, or write one of your own."
			}
		}

	case StepMethod:
		switch idx {
		case 0:
			if !a.choiceAnswered(id, FieldApproach, FieldApproachOther) {
				return "Pick an approach, or describe your own."
			}
		case 1:
			if !a.choiceAnswered(id, FieldCoreBelief, FieldCoreBeliefOther) {
				return "Pick a belief, or state your own."
			}
		case 2:
			if !a.choiceAnswered(id, FieldMetaphor, FieldMetaphorOther) {
				return "Pick a metaphor, or invent your own."
			}
		}

	case StepExample:
		switch idx {
		case 0:
			if !a.choiceAnswered(id, FieldBreakthrough, FieldBreakthroughOther) {
				return "Pick a breakthrough, or describe your own."
			}
		case 1:
			if !a.choiceAnswered(id, FieldFirstAction, FieldFirstActionOther) {
				return "Pick a first action, or describe your own."
			}
		case 2:
			if !a.TextAnswered(id, FieldDialogue) {
				return "Write a short dialogue sample to continue."
			}
		}

	case StepGuardrails:
		switch idx {
		case 0:
			if !a.multiAnswered(id, FieldProhibitions, FieldProhibitionsOther) {
				return "Pick at least one prohibition, or add your own."
			}
		case 1:
			if !a.choiceAnswered(id, FieldDisclosure, FieldDisclosureOther) {
				return "Choose how your twin should disclose itself."
			}
		case 2:
			if a.PermissionsSet(id, FieldAutonomy, AutonomyRows) < len(AutonomyRows) {
				return "Set a permission level for every row."
			}
		}

	case StepPreview:
		if idx == 0 && a.Rating(id, FieldCloseness) <= 0 {
			return "Rate how close the preview feels before continuing."
		}
	}
	return ""
}
