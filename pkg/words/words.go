// Package words spells rupee amounts in Indian-system English, the
// form printed on quotations ("Twelve Lakh Fifty Thousand").
package words

var below20 = [...]string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = [...]string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

// Rupees spells n using the Indian grouping of thousand, lakh and
// crore. Zero spells as the empty string.
func Rupees(n int64) string {
	if n <= 0 {
		return ""
	}
	return spell(n)
}

func spell(n int64) string {
	switch {
	case n < 20:
		return below20[n]
	case n < 100:
		s := tens[n/10]
		if n%10 != 0 {
			s += " " + below20[n%10]
		}
		return s
	case n < 1000:
		s := below20[n/100] + " Hundred"
		if n%100 != 0 {
			s += " and " + spell(n%100)
		}
		return s
	case n < 100000:
		s := spell(n/1000) + " Thousand"
		if n%1000 != 0 {
			s += " " + spell(n%1000)
		}
		return s
	case n < 10000000:
		s := spell(n/100000) + " Lakh"
		if n%100000 != 0 {
			s += " " + spell(n%100000)
		}
		return s
	default:
		s := spell(n/10000000) + " Crore"
		if n%10000000 != 0 {
			s += " " + spell(n%10000000)
		}
		return s
	}
}
