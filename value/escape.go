package value

import "strings"

// Unescape resolves \" \\ \b \f \n \r \t in a single left to right pass, other escapes are kept verbatim
func Unescape(text string) string {
	index := strings.IndexByte(text, '\\')
	if index == -1 {
		return text
	}
	var builder strings.Builder
	builder.Grow(len(text))
	builder.WriteString(text[:index])
	for i := index; i < len(text); i++ {
		c := text[i]
		if c != '\\' || i+1 == len(text) {
			builder.WriteByte(c)
			continue
		}
		switch next := text[i+1]; next {
		case '"', '\\':
			builder.WriteByte(next)
		case 'b':
			builder.WriteByte('\b')
		case 'f':
			builder.WriteByte('\f')
		case 'n':
			builder.WriteByte('\n')
		case 'r':
			builder.WriteByte('\r')
		case 't':
			builder.WriteByte('\t')
		default:
			builder.WriteByte(c)
			builder.WriteByte(next)
		}
		i++
	}
	return builder.String()
}

// AppendQuoted appends double quoted text, it escapes \ " and \b \f \n \r \t control characters
func AppendQuoted(dst []byte, text string) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(text); i++ {
		var escaped byte
		switch text[i] {
		case '\\':
			escaped = '\\'
		case '"':
			escaped = '"'
		case '\b':
			escaped = 'b'
		case '\f':
			escaped = 'f'
		case '\n':
			escaped = 'n'
		case '\r':
			escaped = 'r'
		case '\t':
			escaped = 't'
		default:
			continue
		}
		dst = append(dst, text[start:i]...)
		dst = append(dst, '\\', escaped)
		start = i + 1
	}
	dst = append(dst, text[start:]...)
	return append(dst, '"')
}
