package record

import "time"

// Backend dates arrive as YYYY-MM-DD; documents display DD-MMM-YYYY and the
// dispatch/acceptance blocks use DD-MM-YYYY.
const (
	wireDateLayout    = "2006-01-02"
	DisplayDateLayout = "02-Jan-2006"
	DashDateLayout    = "02-01-2006"
)

// DisplayDate reformats a backend date for document headers. Unparseable
// values pass through unchanged; documents render whatever the backend sent.
func DisplayDate(s string) string {
	return reformat(s, DisplayDateLayout)
}

// DashDate reformats a backend date for dispatch summaries and the
// acceptance block.
func DashDate(s string) string {
	return reformat(s, DashDateLayout)
}

// Today returns the current date in the acceptance-block format.
func Today() string {
	return time.Now().Format(DashDateLayout)
}

func reformat(s, layout string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse(wireDateLayout, s)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, s); err != nil {
			return s
		}
	}
	return t.Format(layout)
}
