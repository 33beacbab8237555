package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// CourseLink is a course reference that the upstream returns either as a bare id
// or as a populated object.
type CourseLink struct {
	ID       string `json:"_id"`
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
}

// UnmarshalJSON accepts both "id" and {"_id": ...}.
func (c *CourseLink) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &c.ID)
	}
	type alias CourseLink
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*c = CourseLink(a)
	return nil
}

// Order is a course purchase.
type Order struct {
	ID            string     `json:"_id"`
	PaymentStatus string     `json:"paymentStatus"`
	PaymentID     string     `json:"paymentId"`
	StudentName   string     `json:"studentName"`
	MobileNumber  string     `json:"mobileNumber"`
	Email         string     `json:"email"`
	ClassName     string     `json:"className"`
	Amount        float64    `json:"amount"`
	CourseType    string     `json:"courseType"`
	Course        CourseLink `json:"course"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func (o Order) Key() string { return o.ID }

// Payment is a gateway payment attached to an order.
type Payment struct {
	ID            string    `json:"_id"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	Order         string    `json:"order"`
	TransactionID string    `json:"transactionId"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"`
	PaidAt        time.Time `json:"paidAt"`
}

func (p Payment) Key() string { return p.ID }
