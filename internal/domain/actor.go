package domain

// Actor is the authenticated identity a workflow operation runs as. Handlers
// build it from the JWT claims; services check role and ownership against it
// at the start of every mutating operation.
type Actor struct {
	ID   int64
	Role UserRole
}

func (a Actor) IsAdmin() bool   { return a.Role == RoleAdmin }
func (a Actor) IsTrainer() bool { return a.Role == RoleTrainer }
