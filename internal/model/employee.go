package model

// Employee is a directory entry. Email may be empty; callers that need a deliverable
// address must check before use.
type Employee struct {
	ID         string `json:"employee_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	Department string `json:"department"`
	Password   string `json:"password"` // demo credentials, plaintext in the seed file
}

// HasEmail reports whether the employee has a deliverable contact address.
func (e Employee) HasEmail() bool {
	return e.Email != ""
}
