package repository

import (
	"encoding/json"
	"strings"
	"testing"
)

// fakeRows feeds canned JSON documents through the rowScanner interface.
type fakeRows struct {
	docs    []string
	idx     int
	iterErr error
}

func (f *fakeRows) Next() bool {
	if f.idx >= len(f.docs) {
		return false
	}
	f.idx++
	return true
}

func (f *fakeRows) ScanDoc(dest interface{}) error {
	return json.Unmarshal([]byte(f.docs[f.idx-1]), dest)
}

func (f *fakeRows) Err() error {
	return f.iterErr
}

func TestScanNotes(t *testing.T) {
	rows := &fakeRows{docs: []string{
		`{"id":"n1","owner_id":"id-alice","title":"first","content":"hello"}`,
		`{"id":"n2","owner_id":"id-alice","title":"second","content":"world"}`,
	}}

	notes, err := scanNotes(rows)
	if err != nil {
		t.Fatalf("scanNotes() error = %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("scanNotes() returned %d notes, want 2", len(notes))
	}
	if notes[0].Title != "first" || notes[1].Title != "second" {
		t.Errorf("scanNotes() titles = %q, %q; want first, second", notes[0].Title, notes[1].Title)
	}
}

func TestScanNotes_CorruptDocumentFailsListing(t *testing.T) {
	rows := &fakeRows{docs: []string{
		`{"id":"n1","owner_id":"id-alice","title":"first","content":"hello"}`,
		`{"id":"n2","owner_id":`,
	}}

	notes, err := scanNotes(rows)
	if err == nil {
		t.Fatal("scanNotes() expected error for corrupt document but got none")
	}
	if !strings.Contains(err.Error(), "failed to scan note") {
		t.Errorf("scanNotes() error = %v, want scan failure", err)
	}
	if notes != nil {
		t.Errorf("scanNotes() = %v, want nil on error", notes)
	}
}

func TestScanShareNoteIDs(t *testing.T) {
	rows := &fakeRows{docs: []string{
		`{"note_id":"n1","grantee_id":"id-bob"}`,
		`{"note_id":"n2","grantee_id":"id-bob"}`,
	}}

	noteIDs, err := scanShareNoteIDs(rows)
	if err != nil {
		t.Fatalf("scanShareNoteIDs() error = %v", err)
	}
	if len(noteIDs) != 2 || noteIDs[0] != "n1" || noteIDs[1] != "n2" {
		t.Errorf("scanShareNoteIDs() = %v, want [n1 n2]", noteIDs)
	}
}

func TestScanShareNoteIDs_CorruptDocumentFailsListing(t *testing.T) {
	rows := &fakeRows{docs: []string{
		`{"note_id":"n1","grantee_id":`,
	}}

	noteIDs, err := scanShareNoteIDs(rows)
	if err == nil {
		t.Fatal("scanShareNoteIDs() expected error for corrupt document but got none")
	}
	if !strings.Contains(err.Error(), "failed to scan shared access") {
		t.Errorf("scanShareNoteIDs() error = %v, want scan failure", err)
	}
	if noteIDs != nil {
		t.Errorf("scanShareNoteIDs() = %v, want nil on error", noteIDs)
	}
}
