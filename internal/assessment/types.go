package assessment

import (
	"strconv"
	"time"
)

// Category groups questions by clinical instrument or purpose.
type Category string

const (
	CategoryDepression  Category = "depression"
	CategoryAnxiety     Category = "anxiety"
	CategoryStress      Category = "stress"
	CategoryWellBeing   Category = "well-being"
	CategoryDemographic Category = "demographic"
)

// QuestionType controls how a question is answered.
type QuestionType string

const (
	TypeScale          QuestionType = "scale"
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeText           QuestionType = "text"
	TypeBoolean        QuestionType = "boolean"
)

// Option is one allowed answer. Value is an int for scale items and a
// string code for choice items. For reverse-scored items (PSS 4–5) the
// inversion is baked into the option values here, never re-applied at
// scoring time.
type Option struct {
	Value any    `json:"value"`
	Label string `json:"label"`
}

// Question is immutable reference data, defined once in the catalog.
type Question struct {
	ID              string       `json:"id"`
	Category        Category     `json:"category"`
	Text            string       `json:"question"`
	Type            QuestionType `json:"type"`
	Required        bool         `json:"required"`
	Options         []Option     `json:"options,omitempty"`
	HelpText        string       `json:"help_text,omitempty"`
	ClinicalContext string       `json:"clinical_context,omitempty"`
}

// Section is an ordered group of questions presented together.
type Section struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	EstimatedMinutes int        `json:"estimated_minutes"`
	ClinicalPurpose  string     `json:"clinical_purpose"`
	Questions        []Question `json:"questions"`
}

// Response is one recorded answer.
type Response struct {
	QuestionID string    `json:"question_id"`
	Value      any       `json:"value"`
	Timestamp  time.Time `json:"timestamp"`
}

// Log is an append-only record of answers in the order they were given.
// A question may appear more than once; the latest entry wins when the
// log is projected into a View.
type Log []Response

// Append records an answer at the given time.
func (l *Log) Append(questionID string, value any, at time.Time) {
	*l = append(*l, Response{QuestionID: questionID, Value: value, Timestamp: at})
}

// View projects the log into its last-write-wins lookup form. Scoring
// functions take a View, never the log itself.
func (l Log) View() View {
	v := make(View, len(l))
	for _, r := range l {
		v[r.QuestionID] = r
	}
	return v
}

// View is a read-only lookup of the latest response per question.
type View map[string]Response

// Item returns the numeric value of a scale item, or 0 when the item is
// missing or non-numeric. Scoring fails open on partial data; completeness
// is the caller's concern.
func (v View) Item(questionID string) int {
	r, ok := v[questionID]
	if !ok {
		return 0
	}
	switch n := r.Value.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		// JSON round-trips land here.
		return int(n)
	case string:
		if parsed, err := strconv.Atoi(n); err == nil {
			return parsed
		}
	}
	return 0
}

// Choice returns the string value of a choice item, or "" when missing.
func (v View) Choice(questionID string) string {
	r, ok := v[questionID]
	if !ok {
		return ""
	}
	s, _ := r.Value.(string)
	return s
}
