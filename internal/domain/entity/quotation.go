package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sinok/quotation-api/internal/domain/enum"
)

// Address is a postal address embedded in a contact or shipment
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Postal  string `json:"postal"`
	Country string `json:"country"`
}

// Contact is a named party (customer or vendor) with communication
// channels and a postal address. Each quotation and each line item owns
// its own copy; contacts are not shared entities.
type Contact struct {
	Name          string  `json:"name"`
	ContactPerson string  `json:"contactPerson,omitempty"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Whatsapp      string  `json:"whatsapp,omitempty"`
	Wechat        string  `json:"wechat,omitempty"`
	Address       Address `json:"address"`
}

func (c Contact) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *Contact) Scan(value interface{}) error {
	return scanJSON(value, c)
}

// ShipmentInfo describes how and where a quotation will be delivered
type ShipmentInfo struct {
	Address     Address             `json:"address"`
	Method      string              `json:"method"`
	Cost        float64             `json:"cost"`
	Tracking    string              `json:"tracking,omitempty"`
	Status      enum.ShipmentStatus `json:"status"`
	ETA         time.Time           `json:"eta"`
	DeliveredAt time.Time           `json:"deliveredAt"`
	Terms       string              `json:"terms,omitempty"`
	Notes       string              `json:"notes,omitempty"`
}

func (s ShipmentInfo) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *ShipmentInfo) Scan(value interface{}) error {
	return scanJSON(value, s)
}

// QuotationItem is one product entry within a quotation, sourced from
// its own vendor. Total is derived as quantity * sellingPrice.
type QuotationItem struct {
	Name          string  `json:"name"`
	ProductNumber string  `json:"productNumber,omitempty"`
	Description   string  `json:"description,omitempty"`
	Category      string  `json:"category,omitempty"`
	Unit          string  `json:"unit,omitempty"`
	Quantity      float64 `json:"quantity"`
	CostPrice     float64 `json:"costPrice"`
	SellingPrice  float64 `json:"sellingPrice"`
	Total         float64 `json:"total"`
	Vendor        Contact `json:"vendor"`
}

// QuotationItems is an ordered line-item list stored as a single JSONB column
type QuotationItems []QuotationItem

func (items QuotationItems) Value() (driver.Value, error) {
	if items == nil {
		items = QuotationItems{}
	}
	return json.Marshal(items)
}

func (items *QuotationItems) Scan(value interface{}) error {
	return scanJSON(value, items)
}

// Quotation is the aggregate root: a priced offer document moving
// through DRAFT -> SENT -> ACCEPTED/REJECTED. The subtotal, total,
// advance and remaining fields are always derived from items, discount,
// tax and paymentTerms, never supplied by a caller.
type Quotation struct {
	ID           uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	Number       string               `gorm:"size:20;uniqueIndex;not null" json:"number"`
	Customer     Contact              `gorm:"type:jsonb;not null" json:"customer"`
	Shipment     ShipmentInfo         `gorm:"type:jsonb;not null" json:"shipment"`
	Items        QuotationItems       `gorm:"type:jsonb;not null" json:"items"`
	ValidUntil   *time.Time           `json:"validUntil,omitempty"`
	PaymentTerms *string              `gorm:"size:10" json:"paymentTerms,omitempty"`
	Discount     float64              `gorm:"type:decimal(15,2);default:0" json:"discount"`
	Tax          float64              `gorm:"type:decimal(15,2);default:0" json:"tax"`
	Subtotal     float64              `gorm:"type:decimal(15,2);default:0" json:"subtotal"`
	Total        float64              `gorm:"type:decimal(15,2);default:0" json:"total"`
	Advance      float64              `gorm:"type:decimal(15,2);default:0" json:"advance"`
	Remaining    float64              `gorm:"type:decimal(15,2);default:0" json:"remaining"`
	Remarks      *string              `gorm:"type:text" json:"remarks,omitempty"`
	Status       enum.QuotationStatus `gorm:"size:20;default:'DRAFT';index" json:"status"`
	Created      time.Time            `gorm:"autoCreateTime;index" json:"created"`
	Updated      time.Time            `gorm:"autoUpdateTime" json:"updated"`
}

// BeforeCreate assigns a UUID before inserting a new quotation
func (q *Quotation) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Quotation model
func (Quotation) TableName() string {
	return "quotations"
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return errors.New("unsupported jsonb source type")
	}
}
