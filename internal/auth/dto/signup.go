package dto

type SignupInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupOutput struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
