package mutate

import (
	"strings"
	"time"

	"momentum-cli/internal/model"
	"momentum-cli/internal/store"
)

// untitledNote is the placeholder title for a note created with a body but
// no title.
const untitledNote = "Untitled note"

// CreateNote adds a note to the front of the board. A note with neither
// title nor body is rejected; a missing title alone gets the placeholder.
func CreateNote(d *model.Document, title, body string, now time.Time) (*model.Note, error) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" && body == "" {
		return nil, ValidationError{Field: "note", Reason: "cannot be empty"}
	}
	if title == "" {
		title = untitledNote
	}
	id := store.NewID(d, "note")
	n := &model.Note{
		ID:        id,
		Title:     title,
		Body:      body,
		CreatedAt: now,
	}
	d.Notes[id] = n
	d.NoteOrder = append([]string{id}, d.NoteOrder...)
	return n, nil
}

func DeleteNote(d *model.Document, noteID string) error {
	noteID = strings.TrimSpace(noteID)
	if _, ok := d.FindNote(noteID); !ok {
		return NotFoundError{Kind: "note", ID: noteID}
	}
	delete(d.Notes, noteID)
	d.NoteOrder = removeID(d.NoteOrder, noteID)
	return nil
}

func SetNoteTitle(d *model.Document, noteID, title string) error {
	n, ok := d.FindNote(noteID)
	if !ok {
		return NotFoundError{Kind: "note", ID: noteID}
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return errEmptyTitle("note title")
	}
	n.Title = title
	return nil
}

func SetNoteBody(d *model.Document, noteID, body string) error {
	n, ok := d.FindNote(noteID)
	if !ok {
		return NotFoundError{Kind: "note", ID: noteID}
	}
	n.Body = strings.TrimSpace(body)
	return nil
}
