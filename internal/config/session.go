package config

// Session is the current front-desk role, backed by the config store so
// it survives restarts until an explicit logout or reset.
type Session struct {
	store *Store
}

func NewSession(store *Store) *Session {
	return &Session{store: store}
}

func (s *Session) Role() string {
	role := s.store.GetValue(SectionUser, KeyCurrentUser)
	if role == "" {
		return RoleStaff
	}
	return role
}

func (s *Session) IsAdmin() bool {
	return s.Role() == RoleAdmin
}

// Promote records an admin login together with the credentials used,
// matching what the desktop app cached after a successful login.
func (s *Session) Promote(email, password string) error {
	s.store.SetValue(SectionAdmin, KeyEmail, email)
	s.store.SetValue(SectionAdmin, KeyPassword, password)
	s.store.SetValue(SectionUser, KeyCurrentUser, RoleAdmin)
	return s.store.Save()
}

// Reset drops the session back to the staff role.
func (s *Session) Reset() error {
	s.store.SetValue(SectionUser, KeyCurrentUser, RoleStaff)
	return s.store.Save()
}
