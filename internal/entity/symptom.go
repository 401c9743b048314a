package entity

// SymptomGroup is one Đông y diagnostic group and its checklist symptoms.
// The catalog of groups is immutable after startup.
type SymptomGroup struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Symptoms []string `json:"symptoms"`
}

// SelectionKey identifies one checkbox in the symptom checklist.
type SelectionKey struct {
	GroupID string
	Symptom string
}
