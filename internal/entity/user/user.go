package user

// Credentials is the login form.
type Credentials struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// Registration is the register form.
type Registration struct {
	Username        string `validate:"required"`
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"required,eqfield=Password" label:"confirm password"`
}

// Session is the identity a client profile holds after login.
type Session struct {
	Username string
}
