package auth

// User is the domain entity. Role is CUSTOMER or ADMIN.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}

const (
	RoleCustomer = "CUSTOMER"
	RoleAdmin    = "ADMIN"
)
