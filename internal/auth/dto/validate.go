package dto

type ValidateOutput struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}
