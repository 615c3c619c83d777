package constants

const (
	// ContextKeyIdentity is the gin context key holding the authenticated identity.
	ContextKeyIdentity = "identity"

	// Pagination bounds for task listing.
	MinPage         = 1
	DefaultPageSize = 10
	MaxPageSize     = 50

	// DefaultLatestLimit caps the "latest tasks" slice served to the home page.
	DefaultLatestLimit = 6

	// DateLayout is the wire format for calendar dates (deadlines).
	DateLayout = "2006-01-02"
)
