package domain

// User is an operator of the application (collection manager).
// Only used by the thin authentication glue around the API surface.
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	AuditFields
}
