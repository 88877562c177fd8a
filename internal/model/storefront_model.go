package model

import "time"

// SupplierInquiry is a sourcing request sent through the contact form.
type SupplierInquiry struct {
	InquiryID int64      `json:"id"`
	Item      string     `json:"item"`
	Details   string     `json:"details,omitempty"`
	Quantity  int        `json:"quantity"`
	Phone     string     `json:"phone"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// StoreSettings is a single-row configuration entity for the storefront chrome.
type StoreSettings struct {
	Logo            string `json:"logo,omitempty"`
	Youtube         string `json:"youtube,omitempty"`
	Instagram       string `json:"instagram,omitempty"`
	Facebook        string `json:"facebook,omitempty"`
	Whatsapp        string `json:"whatsapp,omitempty"`
	Address         string `json:"address,omitempty"`
	Phone           string `json:"phone,omitempty"`
	WorkingHours    string `json:"working_hours,omitempty"`
	LocationMapLink string `json:"location_map_link,omitempty"`
}

type HeroImage struct {
	HeroImageID int64      `json:"id"`
	Image       string     `json:"image"`
	SlideName   string     `json:"slide_name"`
	SlideDesc   string     `json:"slide_description,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}
