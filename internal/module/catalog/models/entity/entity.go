package entity

import "github.com/shopspring/decimal"

type Offering struct {
	OfferingID  int64  `json:"offering_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreateDate  string `json:"create_date"`
	IsActive    bool   `json:"is_active"`
	CreatedBy   string `json:"created_by"`
}

type Category struct {
	CategoryID          int64  `json:"category_id"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	ExtraPersonsAllowed bool   `json:"extra_persons_allowed"`
	NoOfPeopleAllowed   *int   `json:"no_of_people_allowed"`
	CreateDate          string `json:"create_date"`
	IsActive            bool   `json:"is_active"`
	CreatedBy           string `json:"created_by"`
}

type TicketType struct {
	TypeID              int64           `json:"type_id"`
	CategoryID          int64           `json:"category_id"`
	CategoryName        string          `json:"category_name"`
	OfferingID          int64           `json:"offering_id"`
	OfferingName        string          `json:"offering_name"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	ExtraPricePerPerson decimal.Decimal `json:"extra_price_per_person"`
	NoOfTickets         int             `json:"no_of_tickets"`
	CreateDate          string          `json:"create_date"`
	IsActive            bool            `json:"is_active"`
	CreatedBy           string          `json:"created_by"`
}

type Setting struct {
	SettingID        int64  `json:"settingId"`
	SettingKey       string `json:"settingKey"`
	DisplayName      string `json:"displayName"`
	SettingValue     string `json:"settingValue"`
	Description      string `json:"description"`
	SettingsCategory string `json:"settingsCategory"`
	IsActive         bool   `json:"isActive"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

// SpecialDay adjusts prices on one calendar date while Status is on.
type SpecialDay struct {
	Date          string          `json:"date"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	PriceModifier decimal.Decimal `json:"price_modifier"`
	Status        bool            `json:"status"`
}

type User struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	UserGroup string `json:"userGroup"`
}
