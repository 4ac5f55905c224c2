package daterange

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// strftime tokens supported by FormatDate, mapped to Go reference layouts.
// Tokens without a layout equivalent are computed directly.
var formatLayouts = map[byte]string{
	'a': "Mon",
	'A': "Monday",
	'b': "Jan",
	'B': "January",
	'd': "02",
	'm': "01",
	'y': "06",
	'Y': "2006",
}

// FormatDate renders t using a strftime-style format string. Supported
// tokens: %a %A %b %B %d %e %j %m %y %Y %%. Unrecognized tokens and all
// other characters pass through literally.
func FormatDate(t time.Time, format string) string {
	var b strings.Builder
	for i := 0; i < len(format); i++ {
		if format[i] != '%' || i == len(format)-1 {
			b.WriteByte(format[i])
			continue
		}
		i++
		tok := format[i]
		switch tok {
		case '%':
			b.WriteByte('%')
		case 'e':
			b.WriteString(strconv.Itoa(t.Day()))
		case 'j':
			fmt.Fprintf(&b, "%03d", t.YearDay())
		default:
			layout, ok := formatLayouts[tok]
			if !ok {
				b.WriteByte('%')
				b.WriteByte(tok)
				continue
			}
			b.WriteString(t.Format(layout))
		}
	}
	return b.String()
}

// ValidFormat reports whether format produces at least one date-dependent
// token. Used to reject useless formats before persisting them as defaults.
func ValidFormat(format string) error {
	if strings.TrimSpace(format) == "" {
		return fmt.Errorf("format is empty")
	}
	for i := 0; i < len(format)-1; i++ {
		if format[i] != '%' {
			continue
		}
		tok := format[i+1]
		if tok == 'e' || tok == 'j' {
			return nil
		}
		if _, ok := formatLayouts[tok]; ok {
			return nil
		}
	}
	return fmt.Errorf("format %q contains no date tokens", format)
}
