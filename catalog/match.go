// Public domain.

package catalog

import "fmt"

// UnmatchedIDError reports an identifier with no counterpart in the
// reference set of a strict match.
type UnmatchedIDError struct {
	ID any
}

func (e *UnmatchedIDError) Error() string {
	return fmt.Sprintf("identifier %v has no match", e.ID)
}

// MatchIDs aligns ids against a reference identifier column.  The result
// holds, for each input id, the index of its first occurrence in ref.
// With requireMatch any id absent from ref fails with UnmatchedIDError;
// otherwise absent ids yield -1.
func MatchIDs[T comparable](ids, ref []T, requireMatch bool) ([]int, error) {
	first := make(map[T]int, len(ref))
	// reverse iteration leaves the lowest index for duplicate ids
	for i := len(ref) - 1; i >= 0; i-- {
		first[ref[i]] = i
	}
	rows := make([]int, len(ids))
	for i, id := range ids {
		r, ok := first[id]
		if !ok {
			if requireMatch {
				return nil, &UnmatchedIDError{ID: id}
			}
			rows[i] = -1
			continue
		}
		rows[i] = r
	}
	return rows, nil
}
