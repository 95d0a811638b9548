// Package portal holds the residents-portal entities served behind the
// session gate. Persistence is upstream's concern; the gateway only needs a
// store interface and a seeded in-memory implementation.
package portal

import "time"

type Resident struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Unit  string `json:"unit"`
	Phone string `json:"phone,omitempty"`
}

type VisitorStatus string

const (
	VisitorActive  VisitorStatus = "active"
	VisitorRevoked VisitorStatus = "revoked"
)

// Visitor is a gate pass issued by a resident
type Visitor struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Code      string        `json:"code"`
	ValidTill time.Time     `json:"validTill"`
	Status    VisitorStatus `json:"status"`
}

type AccessLog struct {
	ID        string    `json:"id"`
	Gate      string    `json:"gate"`
	Person    string    `json:"person"`
	Direction string    `json:"direction"`
	At        time.Time `json:"at"`
}

type Announcement struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	PostedAt time.Time `json:"postedAt"`
}

type Store interface {
	ListResidents() []Resident
	ListVisitors() []Visitor
	AddVisitor(v Visitor) (Visitor, error)
	ListAccessLogs() []AccessLog
	ListAnnouncements() []Announcement
}
