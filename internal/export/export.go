package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-ical"
)

// Format selects how a confirmed date is written out.
type Format string

const (
	FormatText Format = "text"
	FormatISO  Format = "iso"
	FormatJSON Format = "json"
	FormatICS  Format = "ics"
)

const (
	icalVersion = "2.0"
	icalProdID  = "-//calsheet//Target Date//EN"
	icalDomain  = "calsheet"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists every supported format name.
func Formats() []string {
	return []string{string(FormatText), string(FormatISO), string(FormatJSON), string(FormatICS)}
}

// ParseFormat validates a format name (case-insensitive).
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatText, FormatISO, FormatJSON, FormatICS:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, s, strings.Join(Formats(), ", "))
}

// Selection is the outcome of one picker session.
type Selection struct {
	Title string    `json:"title"`
	Date  time.Time `json:"-"`
}

type jsonSelection struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
}

// Write renders sel in format f. now stamps the iCalendar output.
func Write(w io.Writer, f Format, sel Selection, now time.Time) error {
	switch f {
	case FormatText:
		_, err := fmt.Fprintln(w, sel.Date.Format("January 2, 2006"))
		return err
	case FormatISO:
		_, err := fmt.Fprintln(w, sel.Date.Format(time.DateOnly))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(jsonSelection{
			Title:   sel.Title,
			Date:    sel.Date.Format(time.DateOnly),
			Weekday: sel.Date.Weekday().String(),
		})
	case FormatICS:
		return writeICS(w, sel, now)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// writeICS emits a calendar with one all-day event on the selected date.
func writeICS(w io.Writer, sel Selection, now time.Time) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, icalVersion)
	cal.Props.SetText(ical.PropProductID, icalProdID)

	y, m, d := sel.Date.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, sel.Date.Location())

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, fmt.Sprintf("%s-%s@%s", start.Format("20060102"), slug(sel.Title), icalDomain))
	event.Props.SetText(ical.PropSummary, sel.Title)
	event.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())

	dtStart := ical.NewProp(ical.PropDateTimeStart)
	dtStart.SetDate(start)
	event.Props.Set(dtStart)

	dtEnd := ical.NewProp(ical.PropDateTimeEnd)
	dtEnd.SetDate(start.AddDate(0, 0, 1))
	event.Props.Set(dtEnd)

	cal.Children = append(cal.Children, event.Component)

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encode iCalendar: %w", err)
	}
	return nil
}

func slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case b.Len() > 0 && !strings.HasSuffix(b.String(), "-"):
			b.WriteByte('-')
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "date"
	}
	return out
}
