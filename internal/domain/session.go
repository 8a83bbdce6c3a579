package domain

// Session holds the identity and preferences of the operator for the
// lifetime of the process. It is populated once by a session provider and
// only read afterwards.
type Session struct {
	user   string
	level  AuthLevel
	store  string
	spool  string
	detail bool
}

// SessionInfo carries the values a login step resolves
type SessionInfo struct {
	User   string
	Level  AuthLevel
	Store  string
	Spool  string
	Detail bool
}

// NewSession freezes the resolved login values into a Session
func NewSession(info SessionInfo) *Session {
	return &Session{
		user:   info.User,
		level:  info.Level,
		store:  info.Store,
		spool:  info.Spool,
		detail: info.Detail,
	}
}

func (s *Session) User() string     { return s.user }
func (s *Session) Level() AuthLevel { return s.level }
func (s *Session) Store() string    { return s.store }
func (s *Session) Spool() string    { return s.spool }
func (s *Session) Detail() bool     { return s.detail }

// Allows reports whether the session reaches the required level
func (s *Session) Allows(required AuthLevel) bool {
	return s.level >= required
}
