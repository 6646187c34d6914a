package entity

// Project belongs to exactly one user. Projects are created and listed
// but never renamed or deleted. CreatedAt is an RFC 3339 UTC timestamp.
type Project struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
}
