package user

// Role defines who a user is within the campus card system.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleCashier Role = "CASHIER"
	RoleStudent Role = "STUDENT"
)

// User is an account that can sign in to the system.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	PasswordHash string `json:"-"`
}

// StudentProfile holds enrollment details for users with the STUDENT role.
type StudentProfile struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	EnrollmentNo string `json:"enrollment_no"`
	Department   string `json:"department"`
	Year         int    `json:"year"`
}

// Student combines a user with their enrollment profile.
type Student struct {
	User
	Profile StudentProfile `json:"profile"`
}
