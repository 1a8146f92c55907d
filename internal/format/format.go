package format

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout renders dates as "05 Mar 26".
const DateLayout = "02 Jan 06"

// FmtDate formats t in the site's short date form. The zero time yields "".
func FmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// ISODate formats t for machine-readable attributes such as <time datetime>.
func ISODate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// FmtSGD formats whole dollars with thousands separators, e.g. "$15,000".
func FmtSGD(dollars int64) string {
	if dollars < 0 {
		return "-$" + thousandSep(-dollars)
	}
	return "$" + thousandSep(dollars)
}

func thousandSep(n int64) string {
	s := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}
