package store

import "github.com/rmarquez/shopcore-backend/pkg/enums"

// UserInput carries the caller-supplied fields for a new account. Email
// uniqueness is not enforced; with duplicates, login returns the first
// match in collection order.
type UserInput struct {
	Email    string
	Name     string
	Password *string
	Role     enums.Role
}

// AddUser assigns a fresh id and timestamp and appends the account.
func (s *Store) AddUser(in UserInput) User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addUserLocked(in).clone()
}

// DeleteUser removes the matching account and reports whether one
// existed. No safeguards here: policy such as "sellers cannot be
// deleted" belongs to the presentation layer.
func (s *Store) DeleteUser(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return true
		}
	}
	return false
}

// Users returns a snapshot of the accounts.
func (s *Store) Users() []User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]User, len(s.users))
	for i, u := range s.users {
		out[i] = u.clone()
	}
	return out
}

// Login scans for an account whose email and password both match exactly
// (plaintext comparison; accounts without a password never match). On
// success the session captures a copy of the account and the result is
// true; on failure the session is left untouched. The boolean carries no
// cause so callers cannot distinguish an unknown email from a wrong
// password.
func (s *Store) Login(email, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email && u.Password != nil && *u.Password == password {
			session := u.clone()
			s.session = &session
			return true
		}
	}
	return false
}

// Register creates a customer account and signs it in. It fails only
// when an account with the exact same email and password pair already
// exists; the same email with a different password is allowed and
// produces a second account sharing that email.
func (s *Store) Register(name, email, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email && u.Password != nil && *u.Password == password {
			return false
		}
	}

	pw := password
	user := s.addUserLocked(UserInput{
		Email:    email,
		Name:     name,
		Password: &pw,
		Role:     enums.RoleCustomer,
	})
	session := user.clone()
	s.session = &session
	return true
}

// Logout clears the session unconditionally.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
}

// Session returns a copy of the signed-in account, or nil. The session
// is a snapshot captured at login; later edits to the underlying account
// do not propagate into it.
func (s *Store) Session() *User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil
	}
	session := s.session.clone()
	return &session
}

func (s *Store) addUserLocked(in UserInput) User {
	user := User{
		ID:        s.newID(),
		Email:     in.Email,
		Name:      in.Name,
		Role:      in.Role,
		CreatedAt: s.now(),
	}
	if in.Password != nil {
		pw := *in.Password
		user.Password = &pw
	}
	s.users = append(s.users, user)
	return user
}
