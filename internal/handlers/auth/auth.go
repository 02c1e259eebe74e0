package auth

// Package auth provides the demo login/signup endpoints.
// These accept any credentials: no user store is consulted and every
// successful call returns the same configured token.

// demoUserID is the fixed id reported for every authenticated user.
const demoUserID = 1

// Handler holds the token handed out to every caller.
type Handler struct {
	token string
}

// New returns a new auth handler.
func New(token string) *Handler {
	return &Handler{token: token}
}

type user struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type response struct {
	Message string `json:"message"`
	User    user   `json:"user"`
	Token   string `json:"token"`
}
