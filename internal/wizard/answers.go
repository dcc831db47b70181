package wizard

import "strings"

// Permission is one level of the guardrails autonomy matrix.
type Permission string

const (
	PermissionUnset       Permission = ""
	PermissionNever       Permission = "never"
	PermissionReview      Permission = "review"
	PermissionIndependent Permission = "independent"
)

type stepRecord struct {
	texts    map[string]string
	singles  map[string]string
	multis   map[string][]string
	matrices map[string]map[string]Permission
	ratings  map[string]int
}

func newStepRecord() *stepRecord {
	return &stepRecord{
		texts:    map[string]string{},
		singles:  map[string]string{},
		multis:   map[string][]string{},
		matrices: map[string]map[string]Permission{},
		ratings:  map[string]int{},
	}
}

// Answers holds the per-step captured responses. It performs no
// validation; gating is the session's job. Every mutation notifies the
// dirty hook so memoized progress for that step is recomputed on next read.
type Answers struct {
	steps   map[StepID]*stepRecord
	onDirty func(StepID)
}

func NewAnswers() *Answers {
	return &Answers{steps: map[StepID]*stepRecord{}}
}

func (a *Answers) record(id StepID) *stepRecord {
	r := a.steps[id]
	if r == nil {
		r = newStepRecord()
		a.steps[id] = r
	}
	return r
}

func (a *Answers) dirty(id StepID) {
	if a.onDirty != nil {
		a.onDirty(id)
	}
}

// Clear discards every answer recorded for the step.
func (a *Answers) Clear(id StepID) {
	delete(a.steps, id)
	a.dirty(id)
}

func (a *Answers) SetText(id StepID, key, val string) {
	a.record(id).texts[key] = val
	a.dirty(id)
}

func (a *Answers) Text(id StepID, key string) string {
	if r := a.steps[id]; r != nil {
		return r.texts[key]
	}
	return ""
}

// TextAnswered reports whether the trimmed text is non-empty.
func (a *Answers) TextAnswered(id StepID, key string) bool {
	return strings.TrimSpace(a.Text(id, key)) != ""
}

// SetChoice records a single-select answer, replacing any prior value.
func (a *Answers) SetChoice(id StepID, key, val string) {
	a.record(id).singles[key] = val
	a.dirty(id)
}

func (a *Answers) Choice(id StepID, key string) string {
	if r := a.steps[id]; r != nil {
		return r.singles[key]
	}
	return ""
}

// ToggleChoice flips membership of val in a multi-select set. Toggling a
// present member removes it. Toggling a new member when the set already
// holds limit values is a no-op (limit <= 0 means unbounded).
func (a *Answers) ToggleChoice(id StepID, key, val string, limit int) {
	r := a.record(id)
	cur := r.multis[key]
	for i, v := range cur {
		if v == val {
			r.multis[key] = append(append([]string{}, cur[:i]...), cur[i+1:]...)
			a.dirty(id)
			return
		}
	}
	if limit > 0 && len(cur) >= limit {
		return
	}
	r.multis[key] = append(cur, val)
	a.dirty(id)
}

func (a *Answers) Choices(id StepID, key string) []string {
	if r := a.steps[id]; r != nil {
		return r.multis[key]
	}
	return nil
}

func (a *Answers) HasChoice(id StepID, key, val string) bool {
	for _, v := range a.Choices(id, key) {
		if v == val {
			return true
		}
	}
	return false
}

// SetPermission records one matrix row's level.
func (a *Answers) SetPermission(id StepID, key, row string, p Permission) {
	r := a.record(id)
	m := r.matrices[key]
	if m == nil {
		m = map[string]Permission{}
		r.matrices[key] = m
	}
	m[row] = p
	a.dirty(id)
}

func (a *Answers) Permission(id StepID, key, row string) Permission {
	if r := a.steps[id]; r != nil {
		return r.matrices[key][row]
	}
	return PermissionUnset
}

// PermissionsSet counts matrix rows holding a non-unset level.
func (a *Answers) PermissionsSet(id StepID, key string, rows []string) int {
	n := 0
	for _, row := range rows {
		if a.Permission(id, key, row) != PermissionUnset {
			n++
		}
	}
	return n
}

func (a *Answers) SetRating(id StepID, key string, val int) {
	a.record(id).ratings[key] = val
	a.dirty(id)
}

func (a *Answers) Rating(id StepID, key string) int {
	if r := a.steps[id]; r != nil {
		return r.ratings[key]
	}
	return 0
}

// choiceAnswered is the shared "answered" rule for single-selects with an
// "other" escape hatch: a fixed option is picked, or the other-text is
// non-empty. An "other" toggle with empty text does not count.
func (a *Answers) choiceAnswered(id StepID, field, otherField string) bool {
	if a.Choice(id, field) != "" {
		return true
	}
	return otherField != "" && a.TextAnswered(id, otherField)
}

func (a *Answers) multiAnswered(id StepID, field, otherField string) bool {
	if len(a.Choices(id, field)) > 0 {
		return true
	}
	return otherField != "" && a.TextAnswered(id, otherField)
}

// Export flattens the captured answers into a JSON-friendly shape keyed
// by step id then field key.
func (a *Answers) Export() map[StepID]map[string]any {
	out := map[StepID]map[string]any{}
	for id, r := range a.steps {
		fields := map[string]any{}
		for k, v := range r.texts {
			if strings.TrimSpace(v) != "" {
				fields[k] = v
			}
		}
		for k, v := range r.singles {
			if v != "" {
				fields[k] = v
			}
		}
		for k, v := range r.multis {
			if len(v) > 0 {
				fields[k] = append([]string{}, v...)
			}
		}
		for k, m := range r.matrices {
			if len(m) == 0 {
				continue
			}
			rows := map[string]string{}
			for row, p := range m {
				if p != PermissionUnset {
					rows[row] = string(p)
				}
			}
			fields[k] = rows
		}
		for k, v := range r.ratings {
			if v != 0 {
				fields[k] = v
			}
		}
		if len(fields) > 0 {
			out[id] = fields
		}
	}
	return out
}
