package models

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// ParsePaymentStatus validates a payment status received at a boundary.
func ParsePaymentStatus(value string) (PaymentStatus, error) {
	switch PaymentStatus(value) {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return PaymentStatus(value), nil
	}
	return "", &ValidationError{Field: "statut", Value: value}
}

// Payment records an amount owed or settled by a user, optionally tied to an
// appointment.
type Payment struct {
	BaseModel
	UserID          string        `gorm:"size:36;index" json:"userId"`
	AppointmentID   *string       `gorm:"size:36;index" json:"appointmentId,omitempty"`
	Montant         float64       `gorm:"type:decimal(10,2);not null" json:"montant"`
	Devise          string        `gorm:"size:3;default:'EUR'" json:"devise"` // ISO 4217
	Statut          PaymentStatus `gorm:"size:20;default:'pending'" json:"statut"`
	MethodePaiement *string       `gorm:"size:50" json:"methodePaiement,omitempty"`
	TransactionID   *string       `gorm:"size:100" json:"transactionId,omitempty"`

	// Relations
	User        Profile      `gorm:"foreignKey:UserID" json:"user"`
	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"-"`
}
