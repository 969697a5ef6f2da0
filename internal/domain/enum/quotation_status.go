package enum

import "database/sql/driver"

// QuotationStatus represents the lifecycle state of a quotation
type QuotationStatus string

const (
	QuotationStatusDraft    QuotationStatus = "DRAFT"
	QuotationStatusSent     QuotationStatus = "SENT"
	QuotationStatusAccepted QuotationStatus = "ACCEPTED"
	QuotationStatusRejected QuotationStatus = "REJECTED"
)

// QuotationStatuses lists every valid status, in lifecycle order
var QuotationStatuses = []QuotationStatus{
	QuotationStatusDraft,
	QuotationStatusSent,
	QuotationStatusAccepted,
	QuotationStatusRejected,
}

func (s QuotationStatus) String() string {
	return string(s)
}

// IsValid reports whether s is one of the known statuses
func (s QuotationStatus) IsValid() bool {
	switch s {
	case QuotationStatusDraft, QuotationStatusSent, QuotationStatusAccepted, QuotationStatusRejected:
		return true
	}
	return false
}

func (s QuotationStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *QuotationStatus) Scan(value interface{}) error {
	if value == nil {
		*s = QuotationStatusDraft
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = QuotationStatus(v)
	case []byte:
		*s = QuotationStatus(v)
	}
	return nil
}
