package dto

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterOutput struct {
	UserID string `json:"user_id,omitempty"`
	Exists bool   `json:"exists,omitempty"`
}
