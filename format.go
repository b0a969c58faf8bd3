package logfacade

import (
	"fmt"
	"strings"
)

const (
	formatFlags = "+-#0"
	formatVerbs = "vTtbcdoOqxXUeEfFgGsp"
)

// formatArgs renders debug arguments. A leading string is a printf format
// for the rest (see formatf); otherwise every argument is joined with spaces.
func formatArgs(args []any) string {
	if len(args) == 0 {
		return emptyString
	}
	if format, ok := args[0].(string); ok {
		return formatf(format, args[1:])
	}
	return joinArgs(nil, args)
}

// formatf is a lenient Sprintf. Directives without a verb stay literal, so
// do directives left without an operand, and surplus operands are appended
// separated by spaces. It never produces fmt's %!(...) markers.
func formatf(format string, args []any) string {
	var b strings.Builder
	b.Grow(len(format))

	next := 0
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			b.WriteByte('%')
			i++
			continue
		}

		end, ok := scanDirective(format, i+1)
		if !ok || next >= len(args) {
			b.WriteByte('%')
			continue
		}
		b.WriteString(fmt.Sprintf(format[i:end+1], args[next]))
		next++
		i = end
	}

	if next < len(args) {
		return joinArgs(&b, args[next:])
	}
	return b.String()
}

// scanDirective returns the index of the verb of the directive starting
// after a '%' at from, or false when no verb follows.
func scanDirective(format string, from int) (int, bool) {
	j := from
	for j < len(format) && strings.IndexByte(formatFlags, format[j]) >= 0 {
		j++
	}
	for j < len(format) && isDigit(format[j]) {
		j++
	}
	if j < len(format) && format[j] == '.' {
		j++
		for j < len(format) && isDigit(format[j]) {
			j++
		}
	}
	if j < len(format) && strings.IndexByte(formatVerbs, format[j]) >= 0 {
		return j, true
	}
	return 0, false
}

func joinArgs(b *strings.Builder, args []any) string {
	if b == nil {
		b = &strings.Builder{}
	}
	sep := b.Len() > 0
	for _, a := range args {
		if sep {
			b.WriteByte(' ')
		}
		sep = true
		fmt.Fprint(b, a)
	}
	return b.String()
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
