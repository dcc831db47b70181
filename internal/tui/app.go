package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"twinforge/internal/store"
	"twinforge/internal/wizard"
)

type screen int

const (
	screenContact screen = iota
	screenWizard
)

// Options wires the TUI's collaborators. Sink may be nil (nothing is
// persisted); LookupCountry may be nil (no pre-fill).
type Options struct {
	Sink          store.ProfileSink
	LookupCountry func(context.Context) string
}

type countryResolvedMsg struct{ country string }

type profileStartedMsg struct {
	id  string
	err error
}

type profileSavedMsg struct{ err error }

type appModel struct {
	opts   Options
	width  int
	height int
	screen screen

	session   *wizard.Session
	profileID string

	// Contact screen.
	nameInput      textinput.Model
	emailInput     textinput.Model
	countryInput   textinput.Model
	contactFocus   int
	countryTouched bool

	// Question widgets, re-synced on every sub-step change.
	textInput    textarea.Model
	otherInput   textinput.Model
	optionCursor int

	// Preview slider focus: three axes then the closeness row.
	sliderFocus int

	fx      crossfade
	notice  string
	saveErr string
}

// Run starts the onboarding TUI and blocks until it exits.
func Run(opts Options) error {
	_, err := tea.NewProgram(newAppModel(opts), tea.WithAltScreen()).Run()
	return err
}

func newAppModel(opts Options) appModel {
	m := appModel{
		opts:    opts,
		screen:  screenContact,
		session: wizard.NewSession(),
		width:   80,
		height:  24,
	}

	m.nameInput = textinput.New()
	m.nameInput.Placeholder = "Your name"
	m.nameInput.CharLimit = 100
	m.nameInput.Width = 40
	m.nameInput.Focus()

	m.emailInput = textinput.New()
	m.emailInput.Placeholder = "you@example.com"
	m.emailInput.CharLimit = 200
	m.emailInput.Width = 40

	m.countryInput = textinput.New()
	m.countryInput.Placeholder = "Country"
	m.countryInput.CharLimit = 100
	m.countryInput.Width = 40

	m.otherInput = textinput.New()
	m.otherInput.Placeholder = "Your own words…"
	m.otherInput.CharLimit = 200
	m.otherInput.Width = 48

	m.textInput = textarea.New()
	m.textInput.Placeholder = "Write…"
	m.textInput.CharLimit = 0
	m.textInput.SetWidth(64)
	m.textInput.SetHeight(6)
	m.textInput.ShowLineNumbers = false

	return m
}

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.opts.LookupCountry != nil {
		lookup := m.opts.LookupCountry
		cmds = append(cmds, func() tea.Msg {
			return countryResolvedMsg{country: lookup(context.Background())}
		})
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := m.width - 8
		if w < 24 {
			w = 24
		}
		if w > 72 {
			w = 72
		}
		m.textInput.SetWidth(w)
		return m, nil

	case countryResolvedMsg:
		// Fire-and-forget pre-fill: never clobber what the user typed,
		// and an empty resolution simply leaves the field alone.
		if !m.countryTouched && strings.TrimSpace(m.countryInput.Value()) == "" && msg.country != "" {
			m.countryInput.SetValue(msg.country)
		}
		return m, nil

	case profileStartedMsg:
		if msg.err != nil {
			m.saveErr = "profile could not be saved locally: " + msg.err.Error()
			return m, nil
		}
		m.profileID = msg.id
		return m, nil

	case profileSavedMsg:
		if msg.err != nil {
			m.saveErr = "profile could not be saved locally: " + msg.err.Error()
		} else {
			m.saveErr = ""
		}
		return m, nil

	case crossfadeTextMsg:
		m.fx.onText(msg)
		return m, nil

	case crossfadePromoteMsg:
		m.fx.onPromote(msg)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.screen {
		case screenContact:
			return m.updateContact(msg)
		default:
			return m.updateWizard(msg)
		}
	}
	return m, nil
}

// --- contact screen ---

func (m appModel) updateContact(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.setContactFocus(m.contactFocus + 1)
		return m, nil
	case "shift+tab", "up":
		m.setContactFocus(m.contactFocus - 1)
		return m, nil
	case "enter":
		if m.contactFocus < 2 {
			m.setContactFocus(m.contactFocus + 1)
			return m, nil
		}
		return m.beginWizard()
	}

	var cmd tea.Cmd
	switch m.contactFocus {
	case 0:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case 1:
		m.emailInput, cmd = m.emailInput.Update(msg)
	default:
		before := m.countryInput.Value()
		m.countryInput, cmd = m.countryInput.Update(msg)
		if m.countryInput.Value() != before {
			m.countryTouched = true
		}
	}
	return m, cmd
}

func (m *appModel) setContactFocus(i int) {
	if i < 0 {
		i = 0
	}
	if i > 2 {
		i = 2
	}
	m.contactFocus = i
	inputs := []*textinput.Model{&m.nameInput, &m.emailInput, &m.countryInput}
	for j, in := range inputs {
		if j == i {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (m appModel) beginWizard() (tea.Model, tea.Cmd) {
	m.screen = screenWizard
	m.afterNav()
	if m.opts.Sink == nil {
		return m, nil
	}
	sink := m.opts.Sink
	contact := store.Contact{
		Name:    strings.TrimSpace(m.nameInput.Value()),
		Email:   strings.TrimSpace(m.emailInput.Value()),
		Country: strings.TrimSpace(m.countryInput.Value()),
	}
	return m, func() tea.Msg {
		id, err := sink.Begin(context.Background(), contact)
		return profileStartedMsg{id: id, err: err}
	}
}

// --- wizard screens ---

func (m appModel) updateWizard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	s := m.session
	cur := s.Cursor()

	// Step-index jump keys, outside of text entry.
	if !m.typingActive() && len(key) == 1 && key >= "1" && key <= "6" {
		idx, _ := strconv.Atoi(key)
		if s.JumpTo(idx - 1) {
			m.afterNav()
		}
		return m, nil
	}

	if cur.ShowingIntro {
		switch key {
		case "enter", " ":
			s.DismissIntro()
			m.afterNav()
		case "esc", "left":
			s.GoPrev()
			m.afterNav()
		}
		return m, nil
	}

	if s.Step().ID == wizard.StepPreview {
		return m.updatePreview(msg)
	}

	q := s.ActiveQuestion()
	if q == nil {
		// Feedback screen.
		switch key {
		case "enter", " ":
			m.goNext()
		case "esc", "left":
			s.GoPrev()
			m.afterNav()
		}
		return m, nil
	}

	switch q.Kind {
	case wizard.QuestionText:
		return m.updateTextQuestion(msg, q)
	case wizard.QuestionMatrix:
		return m.updateMatrixQuestion(msg, q)
	default:
		return m.updateChoiceQuestion(msg, q)
	}
}

func (m appModel) updateTextQuestion(msg tea.KeyMsg, q *wizard.Question) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.session.GoPrev()
		m.afterNav()
		return m, nil
	case "ctrl+d":
		m.goNext()
		return m, nil
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.session.Answers().SetText(m.session.Step().ID, q.Field, m.textInput.Value())
	return m, cmd
}

func (m appModel) updateChoiceQuestion(msg tea.KeyMsg, q *wizard.Question) (tea.Model, tea.Cmd) {
	s := m.session
	id := s.Step().ID
	onOther := q.OtherField != "" && m.optionCursor == len(q.Options)

	switch msg.String() {
	case "esc":
		s.GoPrev()
		m.afterNav()
		return m, nil
	case "up":
		m.setOptionCursor(m.optionCursor-1, q)
		return m, nil
	case "down":
		m.setOptionCursor(m.optionCursor+1, q)
		return m, nil
	case " ":
		if !onOther {
			m.toggleOption(q)
			return m, nil
		}
	case "enter":
		if !onOther && q.Kind == wizard.QuestionSingle {
			s.Answers().SetChoice(id, q.Field, q.Options[m.optionCursor])
		}
		// Multi-selects toggle with space only. Enter submits the set as
		// it stands and validation decides whether it may be empty.
		m.goNext()
		return m, nil
	}

	if onOther {
		var cmd tea.Cmd
		m.otherInput, cmd = m.otherInput.Update(msg)
		s.Answers().SetText(id, q.OtherField, m.otherInput.Value())
		return m, cmd
	}
	return m, nil
}

func (m *appModel) toggleOption(q *wizard.Question) {
	if m.optionCursor >= len(q.Options) {
		return
	}
	id := m.session.Step().ID
	if q.Kind == wizard.QuestionSingle {
		m.session.Answers().SetChoice(id, q.Field, q.Options[m.optionCursor])
		return
	}
	m.session.Answers().ToggleChoice(id, q.Field, q.Options[m.optionCursor], q.Cap)
}

func (m *appModel) setOptionCursor(i int, q *wizard.Question) {
	max := len(q.Options) - 1
	if q.OtherField != "" {
		max++
	}
	if i < 0 {
		i = 0
	}
	if i > max {
		i = max
	}
	m.optionCursor = i
	if q.OtherField != "" && i == len(q.Options) {
		m.otherInput.Focus()
	} else {
		m.otherInput.Blur()
	}
}

var permissionCycle = []wizard.Permission{
	wizard.PermissionNever,
	wizard.PermissionReview,
	wizard.PermissionIndependent,
}

func (m appModel) updateMatrixQuestion(msg tea.KeyMsg, q *wizard.Question) (tea.Model, tea.Cmd) {
	s := m.session
	id := s.Step().ID
	switch msg.String() {
	case "esc":
		s.GoPrev()
		m.afterNav()
	case "up":
		if m.optionCursor > 0 {
			m.optionCursor--
		}
	case "down":
		if m.optionCursor < len(q.Rows)-1 {
			m.optionCursor++
		}
	case "left", "right", " ":
		row := q.Rows[m.optionCursor]
		cur := s.Answers().Permission(id, q.Field, row)
		s.Answers().SetPermission(id, q.Field, row, nextPermission(cur, msg.String() == "left"))
	case "n":
		s.Answers().SetPermission(id, q.Field, q.Rows[m.optionCursor], wizard.PermissionNever)
	case "r":
		s.Answers().SetPermission(id, q.Field, q.Rows[m.optionCursor], wizard.PermissionReview)
	case "i":
		s.Answers().SetPermission(id, q.Field, q.Rows[m.optionCursor], wizard.PermissionIndependent)
	case "enter":
		m.goNext()
	}
	return m, nil
}

func nextPermission(cur wizard.Permission, backwards bool) wizard.Permission {
	idx := -1
	for i, p := range permissionCycle {
		if p == cur {
			idx = i
			break
		}
	}
	if backwards {
		if idx <= 0 {
			return permissionCycle[len(permissionCycle)-1]
		}
		return permissionCycle[idx-1]
	}
	return permissionCycle[(idx+1)%len(permissionCycle)]
}

// --- preview step ---

func (m appModel) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session
	switch s.Cursor().SubIndex {
	case 0:
		return m.updatePreviewSliders(msg)
	case 1:
		switch msg.String() {
		case "enter", "a", "y":
			s.AcceptPreview()
			return m, m.completeCmd()
		case "t":
			s.RequestTweak()
			m.afterNav()
			return m, nil
		case "esc", "left":
			s.GoPrev()
			m.afterNav()
			return m, nil
		}
	default:
		switch msg.String() {
		case "enter", "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

const closenessRow = 3

func (m appModel) updatePreviewSliders(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session
	live := s.LiveTone()
	switch msg.String() {
	case "esc":
		s.GoPrev()
		m.afterNav()
		return m, nil
	case "up":
		if m.sliderFocus > 0 {
			m.sliderFocus--
		}
		return m, nil
	case "down":
		if m.sliderFocus < closenessRow {
			m.sliderFocus++
		}
		return m, nil
	case "left", "right":
		delta := 1
		if msg.String() == "left" {
			delta = -1
		}
		switch m.sliderFocus {
		case 0:
			s.SetLiveAxis(wizard.AxisDirectness, live.Directness+delta)
		case 1:
			s.SetLiveAxis(wizard.AxisWarmth, live.Warmth+delta)
		case 2:
			s.SetLiveAxis(wizard.AxisChallenge, live.Challenge+delta)
		default:
			s.SetCloseness(s.Closeness() + delta)
		}
		return m, nil
	case "enter", " ":
		if m.sliderFocus == closenessRow {
			m.goNext()
			return m, nil
		}
		// Releasing a slider commits the drag and starts the crossfade.
		return m, m.fx.begin(s.CommitTone())
	}
	return m, nil
}

// --- shared navigation helpers ---

func (m *appModel) goNext() {
	ok, notice := m.session.GoNext()
	if !ok {
		m.notice = notice
		return
	}
	m.afterNav()
}

// afterNav re-syncs widgets after any step or sub-step change and tears
// down preview transition state when the preview step is not active.
func (m *appModel) afterNav() {
	m.notice = ""
	m.syncQuestion()
	if m.session.Step().ID != wizard.StepPreview {
		m.fx.cancel()
		return
	}
	cur := m.session.Cursor()
	if !cur.ShowingIntro && cur.SubIndex == 0 {
		if _, ok := m.session.Preview(); !ok {
			// First arrival: synthesize from the defaults with no
			// transition.
			m.fx.set(m.session.CommitTone())
		}
	}
}

func (m *appModel) syncQuestion() {
	m.optionCursor = 0
	m.sliderFocus = 0
	m.otherInput.Blur()

	q := m.session.ActiveQuestion()
	if q == nil {
		return
	}
	id := m.session.Step().ID
	switch q.Kind {
	case wizard.QuestionText:
		m.textInput.SetValue(m.session.Answers().Text(id, q.Field))
		m.textInput.Focus()
	default:
		m.textInput.Blur()
		if q.OtherField != "" {
			m.otherInput.SetValue(m.session.Answers().Text(id, q.OtherField))
		} else {
			m.otherInput.SetValue("")
		}
	}
}

// typingActive reports whether keystrokes belong to a text widget, in
// which case step-jump digits must pass through.
func (m appModel) typingActive() bool {
	if m.screen == screenContact {
		return true
	}
	q := m.session.ActiveQuestion()
	if q == nil {
		return false
	}
	if q.Kind == wizard.QuestionText {
		return true
	}
	return q.OtherField != "" && m.optionCursor == len(q.Options)
}

func (m appModel) completeCmd() tea.Cmd {
	if m.opts.Sink == nil || m.profileID == "" {
		return nil
	}
	sink, id := m.opts.Sink, m.profileID
	res := store.Result{
		Tone:      m.session.CommittedTone(),
		Closeness: m.session.Closeness(),
		Answers:   m.session.Answers().Export(),
	}
	return func() tea.Msg {
		return profileSavedMsg{err: sink.Complete(context.Background(), id, res)}
	}
}
