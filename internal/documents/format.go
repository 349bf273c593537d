package documents

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatCurrency renders a USD amount for display, e.g. 1234.5 -> "$1,234.50".
func FormatCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	cents := int64(math.Round(amount * 100))
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(cents/100), cents%100)
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatDate renders an ISO date as a long date, e.g. "2024-03-01" ->
// "March 1, 2024". Unparseable input is returned as-is.
func FormatDate(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format("January 2, 2006")
}

// FormatMonth renders a year-month as "Jan 2024". Used for résumé date
// ranges, which carry no day component. Unparseable input is returned as-is.
func FormatMonth(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return s
	}
	return t.Format("Jan 2006")
}
