package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// InvoiceType distinguishes purchase invoices from sales invoices
type InvoiceType string

const (
	InvoiceTypePurchase InvoiceType = "purchase"
	InvoiceTypeSell     InvoiceType = "sell"
)

func (t InvoiceType) String() string {
	return string(t)
}

// IsValid reports whether t is one of the known invoice types.
func (t InvoiceType) IsValid() bool {
	return t == InvoiceTypePurchase || t == InvoiceTypeSell
}

func (t InvoiceType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *InvoiceType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = InvoiceType(str)
	return nil
}

func (t InvoiceType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *InvoiceType) Scan(value interface{}) error {
	if value == nil {
		*t = InvoiceTypePurchase
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = InvoiceType(v)
	case []byte:
		*t = InvoiceType(string(v))
	}
	return nil
}
