package models

type Role string

const (
	RoleCustomer      Role = "customer"
	RoleAdministrator Role = "administrator"
)

// Identity is the signed-in user for the current session. There is no real
// authentication protocol behind it: customers self-identify with a name and
// mobile number, administrators get one after a successful gateway login.
type Identity struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile,omitempty"`
	Role   Role   `json:"role"`
}

func (i Identity) IsAdministrator() bool {
	return i.Role == RoleAdministrator
}
