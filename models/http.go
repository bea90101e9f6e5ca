package models

// NewSessionRequest is the body of POST /api/logs.
//
// Every field is a pointer so that absence can be told apart from a zero
// value; in particular IsComplete must be present, false is not "missing".
type NewSessionRequest struct {
	// UserID is optional on the wire. The handler overwrites it with the
	// verified token identity after checking that a supplied value matches.
	UserID *int64 `json:"userId,omitempty"`

	StartTime  *Timestamp `json:"startTime,omitempty"`
	EndTime    *Timestamp `json:"endTime,omitempty"`
	Duration   *int64     `json:"duration,omitempty"`
	IsComplete *bool      `json:"isComplete,omitempty"`
}

// Session converts a validated request into a storable session.
func (r NewSessionRequest) Session() FastingSession {
	var session FastingSession
	if r.UserID != nil {
		session.UserID = *r.UserID
	}
	if r.StartTime != nil {
		session.StartTime = *r.StartTime
	}
	if r.IsComplete != nil {
		session.IsComplete = *r.IsComplete
	}
	session.EndTime = r.EndTime
	session.Duration = r.Duration
	return session
}

// SessionRange is the query of GET /api/logs and GET /api/open-logs.
// Bounds are kept as raw strings until validated.
type SessionRange struct {
	UserID    int64  `json:"-"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
}

// HasBounds reports whether at least one bound was supplied.
func (r SessionRange) HasBounds() bool {
	return r.StartTime != "" || r.EndTime != ""
}

// EditRequest is the body of PUT /api/logs/edit. LogIDs and Edits are
// positionally paired.
type EditRequest struct {
	UserID int64          `json:"-"`
	LogIDs []int64        `json:"logIds"`
	Edits  []SessionPatch `json:"edits"`
}
