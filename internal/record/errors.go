package record

import (
	"errors"
	"fmt"
)

// The error types below are data-integrity errors. They are fatal for the
// database being processed, but the driver keeps going with the remaining
// databases. Each carries enough context for a human to fix the source entry.

// MissingAuthorError reports an entry with no author field. A missing author
// would corrupt every downstream sort and citation, so extraction refuses to
// produce the record.
type MissingAuthorError struct {
	Key   string // citation key from the source, if any
	Title string
}

func (e *MissingAuthorError) Error() string {
	switch {
	case e.Title != "":
		return fmt.Sprintf("entry %q has no author", e.Title)
	case e.Key != "":
		return fmt.Sprintf("entry %s has no author", e.Key)
	}
	return "entry has no author"
}

// MissingYearError reports a record lacking both a year and a date attribute.
type MissingYearError struct {
	Title string
}

func (e *MissingYearError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("entry %q has no year or date", e.Title)
	}
	return "entry has no year or date"
}

// MissingFieldError reports a mandatory kind-specific attribute that is
// absent, e.g. a book without a publisher.
type MissingFieldError struct {
	Field string
	Kind  Kind
	Title string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s entry %q is missing mandatory field %q", e.Kind, e.Title, e.Field)
}

// UnsupportedKindError reports an entry kind outside the known set.
type UnsupportedKindError struct {
	Kind string
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("unsupported publication kind %q", e.Kind)
}

// IsMissingField returns true if err is a MissingFieldError for the named
// field. It is mostly a test convenience.
func IsMissingField(err error, field string) bool {
	var mf *MissingFieldError
	return errors.As(err, &mf) && mf.Field == field
}
