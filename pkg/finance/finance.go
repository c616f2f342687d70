package finance

import (
	"fmt"
	"strconv"
	"strings"
)

// GST rates applied by the invoicing flows. Purchases carry a flat 18%
// on the subtotal; sales invoices and quotations split the same burden
// into equal SGST and CGST halves.
const (
	FlatGSTRate = 0.18
	SGSTRate    = 0.09
	CGSTRate    = 0.09
)

// LineAmount returns the payable amount for a single invoice line:
// qty * unitPrice reduced by discountPct percent.
func LineAmount(qty, unitPrice, discountPct float64) float64 {
	return qty * unitPrice * (1 - discountPct/100)
}

// FlatGST returns the flat GST charged on a purchase subtotal.
func FlatGST(subtotal float64) float64 {
	return subtotal * FlatGSTRate
}

// SplitGST returns the SGST and CGST components for a taxable amount.
func SplitGST(taxable float64) (sgst, cgst float64) {
	return taxable * SGSTRate, taxable * CGSTRate
}

// TotalWithFlatGST returns a purchase subtotal grossed up by flat GST.
func TotalWithFlatGST(subtotal float64) float64 {
	return subtotal + FlatGST(subtotal)
}

// TotalWithSplitGST returns a taxable amount grossed up by SGST and CGST.
func TotalWithSplitGST(taxable float64) float64 {
	sgst, cgst := SplitGST(taxable)
	return taxable + sgst + cgst
}

// ProjectProfit derives a project's profit from its final value and the
// three tracked expense heads.
func ProjectProfit(finalValue, materialExpenses, labourCost, taCost float64) float64 {
	return finalValue - (materialExpenses + labourCost + taCost)
}

// ParseAmount parses a free-form amount string from spreadsheet-style
// input. Blank input is treated as zero; anything else must be a valid
// number.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return v, nil
}
