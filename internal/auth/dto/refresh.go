package dto

type RefreshInput struct {
	RefreshToken string `json:"refreshToken"`
}

type RefreshOutput struct {
	AccessToken string `json:"accessToken"`
}
