package tui

import "twinforge/internal/wizard"

// Per-step intro copy, rendered through glamour on the intro screen.
var stepIntros = map[wizard.StepID]string{
	wizard.StepLanguage: `## Language

Two quick choices before anything else: the language we use during
onboarding, and the language your twin will speak with clients.`,

	wizard.StepIdentity: `## Identity

This is where your twin gets its voice. How you introduce yourself,
the words that describe your tone, and the phrases clients would
recognize as unmistakably yours.`,

	wizard.StepMethod: `## Method

Your twin should not just sound like you, it should *think* like you.
Tell us about your approach, the belief that anchors your work, and
the metaphor you reach for.`,

	wizard.StepExample: `## Example

Nothing teaches like a concrete case. Walk us through a recent
breakthrough and write a few lines of dialogue exactly as you would
say them.`,

	wizard.StepGuardrails: `## Guardrails

Hard limits. What your twin must never do, how it discloses that it
is a twin, and how independently it may act on your behalf.`,

	wizard.StepPreview: `## Preview

Time to listen. Move the three tone sliders and your twin speaks; keep
adjusting until the preview sounds like you.`,
}
