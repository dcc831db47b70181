package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"twinforge/internal/wizard"
)

func (m appModel) View() string {
	var body string
	switch m.screen {
	case screenContact:
		body = m.viewContact()
	default:
		body = m.viewWizard()
	}

	parts := []string{m.viewHeader(), body}
	if m.notice != "" {
		parts = append(parts, noticeStyle.Render("! "+m.notice))
	}
	if m.saveErr != "" {
		parts = append(parts, mutedStyle.Render(m.saveErr))
	}
	parts = append(parts, m.viewFooter())
	return strings.Join(parts, "\n\n")
}

func (m appModel) viewHeader() string {
	title := titleStyle.Render("twinforge · shape your coaching twin")
	if m.screen == screenContact {
		return title
	}
	return title + "\n" + m.viewProgressStrip()
}

// viewProgressStrip renders the six-step navigation strip: a mini
// progress bar per step, the current step highlighted, completed steps
// checked (and jumpable via their number key).
func (m appModel) viewProgressStrip() string {
	s := m.session
	var cells []string
	for i, st := range s.Steps() {
		p := s.Progress(st.ID)
		filled := int(p*4 + 0.5)
		bar := strings.Repeat("▰", filled) + strings.Repeat("▱", 4-filled)

		label := fmt.Sprintf("%d %s %s", i+1, st.Label, bar)
		switch {
		case i == s.StepIndex():
			label = accentStyle.Render(label)
		case p >= 1:
			label = doneStyle.Render(label + " ✓")
		case s.CanJumpTo(i):
			label = mutedStyle.Render(label)
		default:
			label = faintIfDark(mutedStyle).Render(label)
		}
		cells = append(cells, label)
	}
	return strings.Join(cells, "   ")
}

func (m appModel) viewFooter() string {
	var hint string
	switch {
	case m.screen == screenContact:
		hint = "tab: next field  enter: continue  ctrl+c: quit"
	case m.session.Cursor().ShowingIntro:
		hint = "enter: begin  esc: back  ctrl+c: quit"
	default:
		hint = m.wizardFooter()
	}
	return faintIfDark(mutedStyle).Render(hint)
}

func (m appModel) wizardFooter() string {
	s := m.session
	if s.Step().ID == wizard.StepPreview {
		switch s.Cursor().SubIndex {
		case 0:
			return "↑/↓: pick slider  ←/→: adjust  enter: hear it  esc: back"
		case 1:
			return "enter/a: accept  t: tweak it  esc: back"
		default:
			return "enter: finish"
		}
	}
	q := s.ActiveQuestion()
	if q == nil {
		return "enter: continue  esc: back"
	}
	switch q.Kind {
	case wizard.QuestionText:
		return "ctrl+d: continue  esc: back"
	case wizard.QuestionMulti:
		return "↑/↓: move  space: toggle  enter: continue  esc: back"
	case wizard.QuestionMatrix:
		return "↑/↓: row  ←/→ or n/r/i: set level  enter: continue  esc: back"
	default:
		return "↑/↓: move  enter: choose  esc: back"
	}
}

// --- contact ---

func (m appModel) viewContact() string {
	rows := []string{
		renderMarkdown("Before we start: who is this twin for?", m.contentWidth()),
		"",
		m.contactField("Name", m.nameInput.View(), m.contactFocus == 0),
		m.contactField("Email", m.emailInput.View(), m.contactFocus == 1),
		m.contactField("Country", m.countryInput.View(), m.contactFocus == 2),
	}
	return strings.Join(rows, "\n")
}

func (m appModel) contactField(label, input string, focused bool) string {
	l := mutedStyle.Render(fmt.Sprintf("%-8s", label))
	if focused {
		l = selectedStyle.Render(fmt.Sprintf("%-8s", label))
	}
	return l + " " + input
}

// --- wizard ---

func (m appModel) viewWizard() string {
	s := m.session
	cur := s.Cursor()

	if cur.ShowingIntro {
		return renderMarkdown(stepIntros[s.Step().ID], m.contentWidth())
	}
	if s.Step().ID == wizard.StepPreview {
		return m.viewPreview()
	}

	q := s.ActiveQuestion()
	if q == nil {
		return m.viewFeedback()
	}

	prompt := titleStyle.Render(q.Prompt)
	count := mutedStyle.Render(fmt.Sprintf("question %d of %d", cur.SubIndex+1, len(wizard.StepQuestions(s.Step().ID))))

	var body string
	switch q.Kind {
	case wizard.QuestionText:
		body = m.textInput.View()
	case wizard.QuestionMatrix:
		body = m.viewMatrix(q)
	default:
		body = m.viewOptions(q)
	}
	return strings.Join([]string{prompt, count, "", body}, "\n")
}

func (m appModel) viewOptions(q *wizard.Question) string {
	s := m.session
	id := s.Step().ID
	var rows []string
	for i, opt := range q.Options {
		marker := "( )"
		if q.Kind == wizard.QuestionMulti {
			marker = "[ ]"
			if s.Answers().HasChoice(id, q.Field, opt) {
				marker = "[x]"
			}
		} else if s.Answers().Choice(id, q.Field) == opt {
			marker = "(•)"
		}
		line := marker + " " + opt
		if i == m.optionCursor {
			line = selectedStyle.Render("› " + line)
		} else {
			line = "  " + line
		}
		rows = append(rows, line)
	}
	if q.OtherField != "" {
		line := "Other: " + m.otherInput.View()
		if m.optionCursor == len(q.Options) {
			line = selectedStyle.Render("› ") + line
		} else {
			line = "  " + line
		}
		rows = append(rows, "", line)
	}
	if q.Kind == wizard.QuestionMulti && q.Cap > 0 {
		rows = append(rows, "", mutedStyle.Render(fmt.Sprintf("up to %d", q.Cap)))
	}
	return strings.Join(rows, "\n")
}

func (m appModel) viewMatrix(q *wizard.Question) string {
	s := m.session
	id := s.Step().ID
	var rows []string
	for i, row := range q.Rows {
		level := s.Answers().Permission(id, q.Field, row)
		var cells []string
		for _, p := range permissionCycle {
			cell := string(p)
			if p == level {
				cell = accentStyle.Render("[" + cell + "]")
			} else {
				cell = mutedStyle.Render(" " + cell + " ")
			}
			cells = append(cells, cell)
		}
		line := fmt.Sprintf("%-28s %s", row, strings.Join(cells, " "))
		if i == m.optionCursor {
			line = selectedStyle.Render("› ") + line
		} else {
			line = "  " + line
		}
		rows = append(rows, line)
	}
	return strings.Join(rows, "\n")
}

var stepFeedback = map[wizard.StepID]string{
	wizard.StepLanguage:   "Languages locked in. Your twin now knows which voice to find.",
	wizard.StepIdentity:   "That's a voice taking shape. The tone words and phrases go straight into the preview.",
	wizard.StepMethod:     "Method captured. Your twin won't just echo you, it will reason like you.",
	wizard.StepExample:    "A real case is worth a hundred adjectives. Noted, word for word.",
	wizard.StepGuardrails: "Boundaries set. Your twin knows exactly where it must stop.",
}

func (m appModel) viewFeedback() string {
	s := m.session
	msg := stepFeedback[s.Step().ID]
	if msg == "" {
		msg = "Step complete."
	}
	pct := int(s.Progress(s.Step().ID)*100 + 0.5)
	return doneStyle.Render(msg) + "\n\n" + mutedStyle.Render(fmt.Sprintf("%d%% of this step answered", pct))
}

// --- preview ---

func (m appModel) viewPreview() string {
	s := m.session
	switch s.Cursor().SubIndex {
	case 1:
		return m.viewPreviewDecision()
	case 2:
		return m.viewPreviewAccepted()
	}
	return m.viewPreviewSliders()
}

func (m appModel) viewPreviewSliders() string {
	s := m.session
	live := s.LiveTone()
	w := m.contentWidth()

	var rows []string
	if m.fx.hasBase {
		rows = append(rows, renderGradientBar(m.fx.base, w, 2, m.fx.fading()), "")
	}
	if m.fx.textVisible {
		p := m.fx.current
		rows = append(rows,
			accentStyle.Render(p.Message),
			"",
			mutedStyle.Render(p.Reflection),
			"",
			doneStyle.Render(p.DemoText),
			"")
	} else if m.fx.hasBase {
		rows = append(rows, mutedStyle.Render("…"), "")
	}

	rows = append(rows,
		renderSlider("Directness", live.Directness, 10, m.sliderFocus == 0),
		renderSlider("Warmth", live.Warmth, 10, m.sliderFocus == 1),
		renderSlider("Challenge", live.Challenge, 10, m.sliderFocus == 2),
		"",
		renderSlider("Closeness", s.Closeness(), 10, m.sliderFocus == closenessRow),
		mutedStyle.Render("how close is this to you? rate it to continue"),
	)
	if s.AdvancedMode() {
		rows = append(rows, "", mutedStyle.Render(fmt.Sprintf("committed: d=%d w=%d c=%d",
			s.CommittedTone().Directness, s.CommittedTone().Warmth, s.CommittedTone().Challenge)))
	}
	return strings.Join(rows, "\n")
}

func (m appModel) viewPreviewDecision() string {
	rows := []string{
		titleStyle.Render("What do you think?"),
		"",
		"  " + doneStyle.Render("a") + "  sounds like me, accept it",
		"  " + accentStyle.Render("t") + "  tweak it",
	}
	return strings.Join(rows, "\n")
}

func (m appModel) viewPreviewAccepted() string {
	s := m.session
	t := s.CommittedTone()
	sum := fmt.Sprintf("directness %d · warmth %d · challenge %d · closeness %d/10",
		t.Directness, t.Warmth, t.Challenge, s.Closeness())
	return lipgloss.JoinVertical(lipgloss.Left,
		doneStyle.Render("Your twin's voice is set."),
		"",
		mutedStyle.Render(sum),
		"",
		renderMarkdown("Your answers and tone profile are saved locally. Run `twinforge profiles list` to see them.", m.contentWidth()),
	)
}

func (m appModel) contentWidth() int {
	w := m.width - 4
	if w < 24 {
		w = 24
	}
	if w > 84 {
		w = 84
	}
	return w
}
