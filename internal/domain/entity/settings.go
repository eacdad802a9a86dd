package entity

// SettingsID es la clave fija de la única fila de ajustes (CHECK id = 1 en la tabla).
const SettingsID = 1

// Settings datos de presentación de la empresa. Existe exactamente una fila.
type Settings struct {
	ID          int
	CompanyName string
	Phone       string
	Email       string
	Currency    string
	Language    string
	Theme       string
	Address     string
	Description string
	LogoURL     string
}

// DefaultSettings valores con los que se crea la fila en la inicialización.
func DefaultSettings() Settings {
	return Settings{
		ID:          SettingsID,
		CompanyName: "ABU Cargo",
		Phone:       "+996000000000",
		Email:       "info@abucargo.example",
		Currency:    "KGS",
		Language:    "ru",
		Theme:       "light",
		Description: "ABU Cargo service",
	}
}
