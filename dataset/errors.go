package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyDataset is returned when an operation needs at least one row.
var ErrEmptyDataset = errors.New("dataset is empty")

// FieldNotFoundError reports a field name that matched no column. The
// available columns are listed verbatim so the caller can self-correct.
type FieldNotFoundError struct {
	Requested string
	Available []string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("field %q not found, available fields: %s",
		e.Requested, strings.Join(e.Available, ", "))
}

// SchemaMismatchError reports a row whose keys differ from the dataset
// columns. RowNumber is 1-based.
type SchemaMismatchError struct {
	RowNumber int
	Missing   []string
	Extra     []string
}

func (e *SchemaMismatchError) Error() string {
	msg := fmt.Sprintf("row %d does not match the dataset columns", e.RowNumber)
	if len(e.Missing) > 0 {
		msg += fmt.Sprintf(", missing: %s", strings.Join(e.Missing, ", "))
	}
	if len(e.Extra) > 0 {
		msg += fmt.Sprintf(", unexpected: %s", strings.Join(e.Extra, ", "))
	}
	return msg
}
