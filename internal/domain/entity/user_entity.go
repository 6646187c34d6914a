package entity

// User is the aggregate root for the account domain.
// Passwords are stored as-is and only ever compared for equality;
// this application keeps everything on the local machine.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Country  string `json:"country"`
}
