package ansisenor

// The parser scans captured output rune by rune, tracking the SGR style in
// effect and handing literal text to a sink. Escape sequences other than
// SGR are recognized by their syntax and dropped; malformed sequences are
// dropped without aborting the scan.

type sink interface {
	emit(r rune, s style)
}

const (
	modeNormal = iota
	modeEscape // seen ESC
	modeInter  // seen ESC + intermediate byte, one final byte follows
	modeCSI    // seen ESC [
	modeString // seen ESC ] (or P, X, ^, _), skipping until BEL or ST
	modeStringEsc
)

type parser struct {
	mode   int
	style  style
	params []string
	param  []rune
	nonSGR bool
	out    sink
}

func newParser(out sink) parser {
	return parser{mode: modeNormal, out: out}
}

func (p *parser) parse(ansi []byte) {
	for _, r := range string(ansi) {
		switch p.mode {
		case modeNormal:
			p.parseNormal(r)
		case modeEscape:
			p.parseEscape(r)
		case modeInter:
			p.mode = modeNormal
		case modeCSI:
			p.parseCSI(r)
		case modeString:
			p.parseString(r)
		case modeStringEsc:
			p.parseStringEsc(r)
		}
	}
}

func (p *parser) parseNormal(r rune) {
	if r == '\x1b' {
		p.mode = modeEscape
		return
	}
	p.out.emit(r, p.style)
}

func (p *parser) parseEscape(r rune) {
	switch {
	case r == '[':
		p.mode = modeCSI
		p.params = p.params[:0]
		p.param = p.param[:0]
		p.nonSGR = false
	case r == ']' || r == 'P' || r == 'X' || r == '^' || r == '_':
		// OSC, DCS, SOS, PM and APC all run until BEL or ST
		p.mode = modeString
	case r >= 0x20 && r <= 0x2f:
		// charset designation etc: exactly one final byte follows
		p.mode = modeInter
	default:
		// single-character escape; nothing to render
		p.mode = modeNormal
	}
}

func (p *parser) parseCSI(r rune) {
	switch {
	case r >= '0' && r <= '9':
		p.param = append(p.param, r)
	case r == ';':
		p.endParam()
	case r >= 0x40 && r <= 0x7e:
		p.endParam()
		if r == 'm' && !p.nonSGR {
			p.style = p.style.apply(p.params)
		}
		p.mode = modeNormal
	case r >= 0x20 && r <= 0x3f:
		// intermediate or private-mode byte; whatever this sequence
		// is, it is not plain SGR
		p.nonSGR = true
	default:
		// malformed; drop the sequence and reprocess this rune
		p.mode = modeNormal
		p.parseNormal(r)
	}
}

func (p *parser) parseString(r rune) {
	switch r {
	case '\x07':
		p.mode = modeNormal
	case '\x1b':
		p.mode = modeStringEsc
	}
}

func (p *parser) parseStringEsc(r rune) {
	switch r {
	case '\\':
		p.mode = modeNormal
	case '\x1b':
		// still a candidate string terminator
	default:
		p.mode = modeString
	}
}

func (p *parser) endParam() {
	p.params = append(p.params, string(p.param))
	p.param = p.param[:0]
}
