//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// ContentShapeError reports resume content whose shape does not match what the layout needs,
// such as a Top Skills list without exactly six entries.
type ContentShapeError struct {
	Field string
	Want  int
	Got   int
}

func (e *ContentShapeError) Error() string {
	return fmt.Sprintf("content shape error: %s must have exactly %d entries, got %d", e.Field, e.Want, e.Got)
}
