package request

type Callback struct {
	Code        string `json:"code" validate:"required"`
	RedirectURI string `json:"redirectUri" validate:"required,url"`
}

type Refresh struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}
