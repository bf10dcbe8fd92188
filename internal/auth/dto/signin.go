package dto

type SigninInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SigninOutput struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
