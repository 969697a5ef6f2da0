package enum

import "database/sql/driver"

// ShipmentStatus represents the delivery state of a quotation's shipment
type ShipmentStatus string

const (
	ShipmentStatusProcessing ShipmentStatus = "PROCESSING"
	ShipmentStatusInTransit  ShipmentStatus = "IN_TRANSIT"
	ShipmentStatusDelivered  ShipmentStatus = "DELIVERED"
	ShipmentStatusCancelled  ShipmentStatus = "CANCELLED"
)

func (s ShipmentStatus) String() string {
	return string(s)
}

// IsValid reports whether s is one of the known statuses
func (s ShipmentStatus) IsValid() bool {
	switch s {
	case ShipmentStatusProcessing, ShipmentStatusInTransit, ShipmentStatusDelivered, ShipmentStatusCancelled:
		return true
	}
	return false
}

func (s ShipmentStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *ShipmentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ShipmentStatusProcessing
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = ShipmentStatus(v)
	case []byte:
		*s = ShipmentStatus(v)
	}
	return nil
}
