package wizard

// Cursor is the per-step-visit sub-step state. It is reset whenever the
// active step changes, entering or re-entering.
type Cursor struct {
	ShowingIntro bool
	SubIndex     int
}

// Axis names one tone slider.
type Axis int

const (
	AxisDirectness Axis = iota
	AxisWarmth
	AxisChallenge
)

// Session is the whole wizard state: step position, sub-step cursor,
// answers, progress, tone sliders and the derived preview. All
// transitions are synchronous methods; nothing here renders.
type Session struct {
	steps     []Step
	stepIndex int
	cursor    Cursor

	answers  *Answers
	calc     *Calculator
	progress map[StepID]float64

	// Slider values: live floats freely while dragging, committed only
	// changes on an explicit CommitTone.
	liveTone      ToneProfile
	committedTone ToneProfile

	preview    PreviewState
	hasPreview bool

	// advancedControls is forced on when the user asks to tweak the
	// preview from the decision screen.
	advancedControls bool
	accepted         bool
}

func NewSession() *Session {
	a := NewAnswers()
	s := &Session{
		steps:         Steps(),
		answers:       a,
		calc:          NewCalculator(a),
		progress:      map[StepID]float64{},
		liveTone:      DefaultTone,
		committedTone: DefaultTone,
	}
	s.enterStep(0)
	return s
}

func (s *Session) Steps() []Step      { return s.steps }
func (s *Session) StepIndex() int     { return s.stepIndex }
func (s *Session) Step() Step         { return s.steps[s.stepIndex] }
func (s *Session) Cursor() Cursor     { return s.cursor }
func (s *Session) Answers() *Answers  { return s.answers }
func (s *Session) Accepted() bool     { return s.accepted }
func (s *Session) AdvancedMode() bool { return s.advancedControls }
func (s *Session) LastSubIndex() int  { return lastSubIndex(s.Step().ID) }

// ActiveQuestion returns the question at the current sub-index, or nil
// on intro/feedback screens.
func (s *Session) ActiveQuestion() *Question {
	if s.cursor.ShowingIntro {
		return nil
	}
	qs := StepQuestions(s.Step().ID)
	if s.cursor.SubIndex >= len(qs) {
		return nil
	}
	q := qs[s.cursor.SubIndex]
	return &q
}

// Progress returns the recorded fraction for a step. The active step's
// entry is refreshed from the calculator; other steps keep the value
// recorded when they were last active.
func (s *Session) Progress(id StepID) float64 {
	if id == s.Step().ID {
		s.progress[id] = s.calc.For(id)
	}
	return s.progress[id]
}

// CanJumpTo reports whether the step index is reachable from the
// navigation strip: completed steps and steps before the current one.
func (s *Session) CanJumpTo(i int) bool {
	if i < 0 || i >= len(s.steps) {
		return false
	}
	if i < s.stepIndex {
		return true
	}
	return s.progress[s.steps[i].ID] >= 1
}

// JumpTo re-enters the given step if the navigation strip allows it.
func (s *Session) JumpTo(i int) bool {
	if i == s.stepIndex || !s.CanJumpTo(i) {
		return false
	}
	s.enterStep(i)
	return true
}

// DismissIntro moves from a step's intro screen to its first question.
func (s *Session) DismissIntro() {
	s.cursor.ShowingIntro = false
}

// GoPrev steps back one sub-step, or to the previous step when already
// at the first sub-step. Clamped at the first step.
func (s *Session) GoPrev() {
	if s.cursor.SubIndex > 0 {
		s.cursor.SubIndex--
		return
	}
	if s.stepIndex > 0 {
		s.enterStep(s.stepIndex - 1)
	}
}

// GoNext advances one sub-step, gated by the active question's
// validation. A rejected transition returns the blocking notice and
// leaves all state unchanged. On the final sub-step it advances to the
// next step, clamped at the last.
//
// The preview decision screen is inert under GoNext: it only resolves
// through AcceptPreview or RequestTweak, so GoNext reports (false, "")
// there. An empty notice distinguishes the inert screen from a
// validation block, which always carries one.
func (s *Session) GoNext() (ok bool, notice string) {
	if s.cursor.ShowingIntro {
		s.cursor.ShowingIntro = false
		return true, ""
	}

	id := s.Step().ID
	if msg := validateQuestion(s.answers, id, s.cursor.SubIndex); msg != "" {
		return false, msg
	}

	// Record progress for the step before leaving it.
	s.progress[id] = s.calc.For(id)

	if s.cursor.SubIndex < lastSubIndex(id) {
		if id == StepPreview && s.cursor.SubIndex == 1 {
			// Inert: the decision screen resolves only through
			// AcceptPreview or RequestTweak. The empty notice marks
			// this as not-a-validation-block.
			return false, ""
		}
		s.cursor.SubIndex++
		return true, ""
	}

	if s.stepIndex < len(s.steps)-1 {
		s.enterStep(s.stepIndex + 1)
	}
	return true, ""
}

// AcceptPreview resolves the preview decision screen forward to the
// terminal accepted screen.
func (s *Session) AcceptPreview() {
	if s.Step().ID != StepPreview || s.cursor.SubIndex != 1 {
		return
	}
	s.progress[StepPreview] = s.calc.For(StepPreview)
	s.cursor.SubIndex = 2
	s.accepted = true
}

// RequestTweak returns from the preview decision screen to the slider
// screen with the advanced controls forced visible. The committed tone
// profile is kept.
func (s *Session) RequestTweak() {
	if s.Step().ID != StepPreview || s.cursor.SubIndex != 1 {
		return
	}
	s.cursor.SubIndex = 0
	s.advancedControls = true
}

// enterStep activates a step: cursor reset, that step's answers cleared,
// and its progress entry recomputed against the cleared record. Other
// steps' answers and progress entries are untouched.
func (s *Session) enterStep(i int) {
	s.stepIndex = i
	s.cursor = Cursor{ShowingIntro: true, SubIndex: 0}
	id := s.steps[i].ID
	s.answers.Clear(id)
	s.progress[id] = s.calc.For(id)

	if id == StepPreview {
		s.liveTone = DefaultTone
		s.committedTone = DefaultTone
		s.preview = PreviewState{}
		s.hasPreview = false
		s.accepted = false
	}
}

// LiveTone returns the dragging slider values.
func (s *Session) LiveTone() ToneProfile { return s.liveTone }

// CommittedTone returns the profile the preview was last generated from.
func (s *Session) CommittedTone() ToneProfile { return s.committedTone }

// SetLiveAxis floats a slider while dragging. No side effects: the
// preview is untouched until CommitTone.
func (s *Session) SetLiveAxis(a Axis, v int) {
	v = clampAxis(v)
	switch a {
	case AxisDirectness:
		s.liveTone.Directness = v
	case AxisWarmth:
		s.liveTone.Warmth = v
	case AxisChallenge:
		s.liveTone.Challenge = v
	}
}

// CommitTone finalizes the live drag and resynthesizes the preview.
func (s *Session) CommitTone() PreviewState {
	s.committedTone = s.liveTone
	s.preview = CommitPreview(s.committedTone, s.answers)
	s.hasPreview = true
	return s.preview
}

// Preview returns the last committed preview and whether one exists.
func (s *Session) Preview() (PreviewState, bool) {
	return s.preview, s.hasPreview
}

// SetCloseness records the preview step's closeness rating, clamped to
// [0,10].
func (s *Session) SetCloseness(v int) {
	if v < 0 {
		v = 0
	}
	if v > 10 {
		v = 10
	}
	s.answers.SetRating(StepPreview, FieldCloseness, v)
}

// Closeness returns the current closeness rating.
func (s *Session) Closeness() int {
	return s.answers.Rating(StepPreview, FieldCloseness)
}
