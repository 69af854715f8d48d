package types

// UserID represents a user identifier
type UserID string

// String returns the string representation
func (id UserID) String() string {
	return string(id)
}

// TeamID represents a team identifier
type TeamID string

// String returns the string representation
func (id TeamID) String() string {
	return string(id)
}

// LeagueID represents a league identifier
type LeagueID string

// String returns the string representation
func (id LeagueID) String() string {
	return string(id)
}

// MatchID represents a match identifier
type MatchID string

// String returns the string representation
func (id MatchID) String() string {
	return string(id)
}

// InviteID represents an invitation identifier
type InviteID string

// String returns the string representation
func (id InviteID) String() string {
	return string(id)
}

// Namespace identifies which backend service owns an identifier.
// A resolution batch never mixes namespaces.
type Namespace string

const (
	NamespaceUser   Namespace = "user"
	NamespaceTeam   Namespace = "team"
	NamespaceLeague Namespace = "league"
)

// String returns the string representation
func (n Namespace) String() string {
	return string(n)
}

// FallbackLabel returns the placeholder label substituted when a lookup
// in this namespace fails or yields no usable name. Never empty.
func (n Namespace) FallbackLabel() string {
	switch n {
	case NamespaceUser:
		return "Unknown User"
	case NamespaceTeam:
		return "Team"
	case NamespaceLeague:
		return "League"
	default:
		return "Unknown"
	}
}

// LabelMap maps raw identifiers to resolved display labels within a
// single namespace. Built fresh per resolution call.
type LabelMap map[string]string

// Get returns the label for id, or the namespace fallback when the id
// is absent or mapped to an empty string.
func (m LabelMap) Get(id string, ns Namespace) string {
	if label, ok := m[id]; ok && label != "" {
		return label
	}
	return ns.FallbackLabel()
}

// InviteStatus represents the lifecycle state of an invitation
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "PENDING"
	InviteStatusAccepted InviteStatus = "ACCEPTED"
	InviteStatusDeclined InviteStatus = "DECLINED"
)

// String returns the string representation
func (s InviteStatus) String() string {
	return string(s)
}

// IsPending reports whether the invite still awaits a response
func (s InviteStatus) IsPending() bool {
	return s == InviteStatusPending
}

// InviteKind tags the shape of a resolved invite card
type InviteKind string

const (
	// InviteKindLeague is a league inviting a team to join it
	InviteKindLeague InviteKind = "league"
	// InviteKindTeamMatch is a match inviting a team as the opponent
	InviteKindTeamMatch InviteKind = "team-match"
	// InviteKindRefereeMatch is a match inviting a user to referee it
	InviteKindRefereeMatch InviteKind = "referee-match"
)

// String returns the string representation
func (k InviteKind) String() string {
	return string(k)
}

// EntityType tags a search result entity
type EntityType string

const (
	EntityTypeTeam       EntityType = "team"
	EntityTypeLeague     EntityType = "league"
	EntityTypeTournament EntityType = "tournament"
)

// String returns the string representation
func (t EntityType) String() string {
	return string(t)
}
