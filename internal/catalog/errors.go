package catalog

import "fmt"

// MalformedRecordError reports a record that is missing a required field or
// carries an invalid value. Index is the zero-based position in the source.
type MalformedRecordError struct {
	ID     string
	Index  int
	Field  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	id := e.ID
	if id == "" {
		id = fmt.Sprintf("record #%d", e.Index+1)
	}
	return fmt.Sprintf("malformed record %q: field %q: %s", id, e.Field, e.Reason)
}

// DuplicateIDError reports a second record claiming an id already in use.
type DuplicateIDError struct {
	ID    string
	Index int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate project id %q (record #%d)", e.ID, e.Index+1)
}
