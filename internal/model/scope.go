package model

// Role is an employee's access role.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
)

// Scope identifies the caller of a request: the conversation session key plus the
// authenticated employee, if any. EmployeeID is empty for anonymous sessions.
type Scope struct {
	SessionKey string
	EmployeeID string
	Name       string
	Role       Role
}

// IsAuthenticated reports whether the scope belongs to a logged-in employee.
func (s Scope) IsAuthenticated() bool {
	return s.EmployeeID != ""
}

// IsAdmin reports whether the scope belongs to an admin.
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// Environment names.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
