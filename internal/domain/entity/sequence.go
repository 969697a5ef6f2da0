package entity

// Sequence is a named monotonic counter. Quotation numbers are drawn
// from a sequence row with an atomic increment, so concurrent creates
// never observe the same value (a plain row count would).
type Sequence struct {
	Name  string `gorm:"size:50;primary_key"`
	Value int64  `gorm:"not null;default:0"`
}

// SequenceQuotationNumber is the sequence backing QT- numbering
const SequenceQuotationNumber = "quotation_number"

// TableName returns the table name for the Sequence model
func (Sequence) TableName() string {
	return "sequences"
}
