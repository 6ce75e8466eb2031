package view

// LoginForm echoes submitted values back into the login page.
type LoginForm struct {
	Username string
}

// LoginVM drives the login page.
type LoginVM struct {
	Title     string
	Form      LoginForm
	FormError string
	Flash     *Flash
	ReturnTo  string
}
