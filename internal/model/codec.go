package model

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Persisted document schema. Priority travels as its ordinal; a pointer
// distinguishes an absent field from an explicit zero (Low).
type subTaskDoc struct {
	Title  string `json:"title"`
	IsDone bool   `json:"isDone"`
}

type taskDoc struct {
	ID       string       `json:"id,omitempty"`
	Title    string       `json:"title"`
	IsDone   bool         `json:"isDone"`
	Priority *int         `json:"priority"`
	SubTasks []subTaskDoc `json:"subTasks"`
}

// EncodeTasks serializes the whole collection as one JSON array document.
func EncodeTasks(tasks []Task) ([]byte, error) {
	docs := make([]taskDoc, 0, len(tasks))
	for _, t := range tasks {
		ordinal := int(t.Priority)
		doc := taskDoc{
			ID:       t.ID,
			Title:    t.Title,
			IsDone:   t.IsDone,
			Priority: &ordinal,
		}
		if len(t.SubTasks) > 0 {
			doc.SubTasks = make([]subTaskDoc, 0, len(t.SubTasks))
			for _, s := range t.SubTasks {
				doc.SubTasks = append(doc.SubTasks, subTaskDoc{Title: s.Title, IsDone: s.IsDone})
			}
		}
		docs = append(docs, doc)
	}
	payload, err := json.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("model: encode tasks: %w", err)
	}
	return payload, nil
}

// DecodeTasks parses a persisted document array. Records missing priority
// (or carrying an ordinal outside the known set) fall back to Medium, a
// missing or null subTasks field becomes an empty sequence, and records
// written before ids existed get a fresh one. A document that does not
// parse fails the whole decode.
func DecodeTasks(payload []byte) ([]Task, error) {
	var docs []taskDoc
	if err := json.Unmarshal(payload, &docs); err != nil {
		return nil, fmt.Errorf("model: decode tasks: %w", err)
	}
	out := make([]Task, 0, len(docs))
	for _, doc := range docs {
		task := Task{
			ID:       doc.ID,
			Title:    doc.Title,
			IsDone:   doc.IsDone,
			Priority: PriorityMedium,
		}
		if doc.Priority != nil && Priority(*doc.Priority).IsValid() {
			task.Priority = Priority(*doc.Priority)
		}
		if task.ID == "" {
			task.ID = uuid.NewString()
		}
		if len(doc.SubTasks) > 0 {
			task.SubTasks = make([]SubTask, 0, len(doc.SubTasks))
			for _, s := range doc.SubTasks {
				task.SubTasks = append(task.SubTasks, SubTask{Title: s.Title, IsDone: s.IsDone})
			}
		}
		out = append(out, task)
	}
	return out, nil
}
