package dto

// AuthRequest payload for the password gates.
type AuthRequest struct {
	Password string `json:"password"`
}
