package viewmodel

// User represents the signed-in user exposed to templates.
type User struct {
	Name  string
	Email string
	Role  string
}

// DisplayName prefers the name claim and falls back to the email.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// Layout captures shared chrome metadata (titles, navigation state, auth flags).
type Layout struct {
	Title       string
	PageTitle   string
	CurrentPage string
	// Region is "public", "shopper" or "admin"; it picks the navigation shown.
	Region          string
	CSRFToken       string
	PageLoadID      string
	IsAuthenticated bool
	IsAdmin         bool
	User            *User
	// CartPollSeconds drives the header cart badge refresh.
	CartPollSeconds int
}

// LayoutProvider exposes layout metadata for renderer utilities.
type LayoutProvider interface {
	LayoutData() *Layout
}
