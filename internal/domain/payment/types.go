package payment

// Status is the canonical payment-reference state. The upstream API speaks
// two-digit wire codes ("01".."04"); translation happens at the gateway edge
// so only this representation circulates inside the service.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPaid      Status = "PAID"
	StatusCancelled Status = "CANCELLED"
	StatusExpired   Status = "EXPIRED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusCancelled, StatusExpired:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is permitted.
// Only PENDING records may change state.
func (s Status) IsTerminal() bool {
	return s.IsValid() && s != StatusPending
}

// CanTransitionTo enforces the lifecycle: PENDING may move to any terminal
// state; terminal states never move again.
func (s Status) CanTransitionTo(next Status) bool {
	if !s.IsValid() || !next.IsValid() {
		return false
	}
	return s == StatusPending && next != StatusPending
}

// ParseStatus maps a canonical status string, as used in filters and requests.
func ParseStatus(v string) (Status, error) {
	s := Status(v)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
