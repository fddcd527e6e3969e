package core

// IDGenerator produces human-readable identifiers
type IDGenerator interface {
	// TicketCode returns a short random code for a new ticket row
	TicketCode() (string, error)
	// TransactionID returns a fresh purchase transaction id
	TransactionID() string
}
