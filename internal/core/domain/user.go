package domain

// Role tags what a logged-in operator may do.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleLibrarian Role = "LIBRARIAN"
	RoleStudent   Role = "STUDENT"
)

// RoleFromString maps a stored role tag to a Role, defaulting to STUDENT.
func RoleFromString(s string) Role {
	switch s {
	case "ADMIN":
		return RoleAdmin
	case "LIBRARIAN":
		return RoleLibrarian
	default:
		return RoleStudent
	}
}

// User is one operator account. For students the username doubles as the
// borrower id on loans and waiting lists.
type User struct {
	Username string `json:"username"`
	Password string `json:"-"` // bcrypt hash
	Role     Role   `json:"role"`
}
