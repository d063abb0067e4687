package ansisenor

import "strings"

// htmlBuffer accumulates rendered output, opening and closing a styled
// span whenever the active style changes. Text under the default style is
// emitted without a wrapper.
type htmlBuffer struct {
	strings.Builder
	theme Theme
	open  style
}

func (b *htmlBuffer) emit(r rune, s style) {
	if s != b.open {
		b.setStyle(s)
	}
	b.appendChar(r)
}

func (b *htmlBuffer) setStyle(s style) {
	if !b.open.isPlain() {
		b.WriteString("</span>")
	}
	b.open = s
	if !s.isPlain() {
		b.WriteString(`<span style="`)
		b.WriteString(s.css(b.theme))
		b.WriteString(`">`)
	}
}

// Append a character to the buffer, escaping HTML bits as necessary.
func (b *htmlBuffer) appendChar(r rune) {
	switch r {
	case '&':
		b.WriteString("&amp;")
	case '\'':
		b.WriteString("&#39;")
	case '<':
		b.WriteString("&lt;")
	case '>':
		b.WriteString("&gt;")
	case '"':
		b.WriteString("&quot;")
	default:
		b.WriteRune(r)
	}
}

// Render converts captured ANSI output to HTML under the given theme and
// returns the result: the inner content of a <pre> block, with
// inline-styled spans for colored runs. Wrap it with Document for a
// standalone page.
func Render(input []byte, theme Theme) []byte {
	buf := htmlBuffer{theme: theme}
	p := newParser(&buf)
	p.parse(input)
	buf.setStyle(0)
	return []byte(buf.String())
}
