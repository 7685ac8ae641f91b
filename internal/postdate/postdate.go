// Package postdate renders the human-readable date stored with each post.
package postdate

import (
	"strings"
	"time"
)

// Layout is the display layout, e.g. "Friday 01 March 2024".
const Layout = "Monday 02 January 2006"

var persianDigits = strings.NewReplacer(
	"0", "۰", "1", "۱", "2", "۲", "3", "۳", "4", "۴",
	"5", "۵", "6", "۶", "7", "۷", "8", "۸", "9", "۹",
)

// Formatter turns a creation time into its display string.
type Formatter struct {
	Location *time.Location
	Persian  bool
}

// New returns a formatter for the given digit set ("latin" or "persian").
func New(digits string, loc *time.Location) Formatter {
	if loc == nil {
		loc = time.Local
	}
	return Formatter{Location: loc, Persian: digits == "persian"}
}

func (f Formatter) Format(t time.Time) string {
	loc := f.Location
	if loc == nil {
		loc = time.UTC
	}
	s := t.In(loc).Format(Layout)
	if f.Persian {
		s = persianDigits.Replace(s)
	}
	return s
}
