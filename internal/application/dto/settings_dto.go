package dto

// UpdateSettingsRequest reemplazo completo de los ajustes: un campo ausente queda vacío.
type UpdateSettingsRequest struct {
	CompanyName string `json:"company_name" form:"company_name"`
	Phone       string `json:"phone" form:"phone"`
	Email       string `json:"email" form:"email"`
	Currency    string `json:"currency" form:"currency"`
	Language    string `json:"language" form:"language"`
	Theme       string `json:"theme" form:"theme"`
	Address     string `json:"address" form:"address"`
	Description string `json:"description" form:"description"`
	LogoURL     string `json:"logo_url" form:"logo_url"`
}

// SettingsResponse ajustes de la empresa.
type SettingsResponse struct {
	CompanyName string `json:"company_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Currency    string `json:"currency"`
	Language    string `json:"language"`
	Theme       string `json:"theme"`
	Address     string `json:"address"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
}
