package model

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// PropertyCurfewSettings is the per-property curfew policy. It is written by
// the admin settings API and only read by the ingestion path.
type PropertyCurfewSettings struct {
	ID                            string                      `gorm:"type:uuid;primaryKey" json:"id"`
	PropertyID                    string                      `gorm:"type:uuid;not null;uniqueIndex" json:"property_id"`
	CurfewStartTime               string                      `gorm:"type:varchar(5);not null" json:"curfew_start_time"`
	CurfewEndTime                 string                      `gorm:"type:varchar(5);not null" json:"curfew_end_time"`
	LateEntryNotificationsEnabled bool                        `gorm:"not null;default:false" json:"late_entry_notifications_enabled"`
	NotificationRecipients        datatypes.JSONSlice[string] `json:"notification_recipients"`
	CreatedAt                     time.Time                   `json:"created_at"`
	UpdatedAt                     time.Time                   `json:"updated_at"`
}

// CurfewVerdict is the outcome of classifying a timestamp against a curfew
// policy. Unknown marks a failed lookup; callers treat it as NotLate so that
// late detection never blocks recording the physical event.
type CurfewVerdict int

const (
	VerdictNotLate CurfewVerdict = iota
	VerdictLate
	VerdictUnknown
)

func (v CurfewVerdict) IsLate() bool {
	return v == VerdictLate
}

func (v CurfewVerdict) String() string {
	switch v {
	case VerdictLate:
		return "late"
	case VerdictUnknown:
		return "unknown"
	default:
		return "not_late"
	}
}

// CurfewWindow is a time-of-day range in minutes since midnight. The window
// may wrap past midnight (start > end, e.g. 22:00-06:00).
type CurfewWindow struct {
	Start int
	End   int
}

// ParseClock parses an "HH:MM" clock value into minutes since midnight.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return h*60 + m, nil
}

// Window parses the settings' clock values into a CurfewWindow.
func (s *PropertyCurfewSettings) Window() (CurfewWindow, error) {
	start, err := ParseClock(s.CurfewStartTime)
	if err != nil {
		return CurfewWindow{}, err
	}
	end, err := ParseClock(s.CurfewEndTime)
	if err != nil {
		return CurfewWindow{}, err
	}
	return CurfewWindow{Start: start, End: end}, nil
}

// Contains reports whether t's time of day falls inside the window. The start
// boundary is inclusive and the end boundary exclusive. An equal start and
// end is an empty window.
func (w CurfewWindow) Contains(t time.Time) bool {
	tod := t.Hour()*60 + t.Minute()
	switch {
	case w.Start == w.End:
		return false
	case w.Start > w.End: // wraps past midnight
		return tod >= w.Start || tod < w.End
	default:
		return tod >= w.Start && tod < w.End
	}
}
