package user

// Staff roles. ADMIN can manage users; TEAM gets the rest of the admin
// dashboard. There is no customer login, shoppers are tracked in the
// customer package.
const (
	RoleAdmin = "ADMIN"
	RoleTeam  = "TEAM"
)

// User is an admin dashboard account.
type User struct {
	ID        string `json:"userId"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// sanitizeUser blanks the password hash before a user leaves the API.
func sanitizeUser(u User) User {
	u.Password = ""
	return u
}

func validRole(role string) bool {
	return role == RoleAdmin || role == RoleTeam
}
