package entity

// Agent is a client contact who books shoots, usually a real-estate agent.
type Agent struct {
	Base
	Name    string  `db:"name"`
	Email   string  `db:"email"`
	Phone   *string `db:"phone"`
	Company *string `db:"company"`
}
