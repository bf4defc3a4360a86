package request

import "github.com/shopspring/decimal"

type Offering struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active,omitempty"`
	CreatedBy   string `json:"created_by,omitempty"`
}

type Category struct {
	Name                string `json:"name" validate:"required"`
	Description         string `json:"description"`
	ExtraPersonsAllowed bool   `json:"extra_persons_allowed"`
	NoOfPeopleAllowed   *int   `json:"no_of_people_allowed,omitempty" validate:"omitempty,min=1"`
	IsActive            *bool  `json:"is_active,omitempty"`
	CreatedBy           string `json:"created_by,omitempty"`
}

type TicketType struct {
	CategoryID          int64           `json:"category_id" validate:"required"`
	OfferingID          int64           `json:"offering_id" validate:"required"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	ExtraPricePerPerson decimal.Decimal `json:"extra_price_per_person"`
	NoOfTickets         int             `json:"no_of_tickets" validate:"min=0"`
	IsActive            *bool           `json:"is_active,omitempty"`
	CreatedBy           string          `json:"created_by,omitempty"`
}

type Setting struct {
	SettingKey       string `json:"settingKey" validate:"required"`
	DisplayName      string `json:"displayName" validate:"required"`
	SettingValue     string `json:"settingValue" validate:"required"`
	Description      string `json:"description"`
	SettingsCategory string `json:"settingsCategory"`
	IsActive         *bool  `json:"isActive,omitempty"`
}

type CreateSpecialDay struct {
	Date          string          `json:"date" validate:"required,datetime=2006-01-02"`
	Name          string          `json:"name" validate:"required"`
	Description   string          `json:"description,omitempty"`
	PriceModifier decimal.Decimal `json:"price_modifier"`
}

type UpdateSpecialDay struct {
	Name          string           `json:"name,omitempty"`
	Description   string           `json:"description,omitempty"`
	PriceModifier *decimal.Decimal `json:"price_modifier,omitempty"`
}

type User struct {
	Username     string `json:"username" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,e164"`
	TempPassword string `json:"tempPassword" validate:"required,min=8"`
	UserGroup    string `json:"userGroup" validate:"required,oneof=STAFF ADMIN"`
}
