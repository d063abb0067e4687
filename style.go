package ansisenor

import (
	"fmt"
	"strconv"
	"strings"
)

// style packs the active SGR attributes into a single comparable value.
//
// style encoding:
// 0... ...23  24... ...47  48,49    50,51    52... ...57
// [fg color]  [bg color]   fg mode  bg mode  [flags]
type style uint64

// Color modes. colorBase stores a palette index 0-15, color8Bit an
// xterm-256 index, color24Bit a packed RGB value.
const (
	colorNone = iota
	colorBase
	color8Bit
	color24Bit
)

const (
	sbBold = style(1) << (52 + iota)
	sbFaint
	sbItalic
	sbUnderline
	sbBlink
	sbStrike
)

func (s style) isPlain() bool { return s == 0 }

func (s style) fgMode() uint8 { return uint8(s >> 48 & 3) }
func (s style) bgMode() uint8 { return uint8(s >> 50 & 3) }
func (s style) fgColor() uint32 { return uint32(s & 0xff_ffff) }
func (s style) bgColor() uint32 { return uint32(s >> 24 & 0xff_ffff) }

func (s *style) setFGColor(mode uint8, v uint32) {
	*s = *s&^(0xff_ffff|style(3)<<48) | style(v&0xff_ffff) | style(mode)<<48
}

func (s *style) setBGColor(mode uint8, v uint32) {
	*s = *s&^(style(0xff_ffff)<<24|style(3)<<50) | style(v&0xff_ffff)<<24 | style(mode)<<50
}

// apply interprets SGR parameters against the current style and returns the
// updated style. No parameters (or an empty parameter) resets everything;
// unrecognized codes are ignored.
func (s style) apply(params []string) style {
	if len(params) == 0 {
		return 0
	}
	for i := 0; i < len(params); i++ {
		if params[i] == "" {
			s = 0
			continue
		}
		n, err := strconv.Atoi(params[i])
		if err != nil {
			continue
		}
		switch {
		case n == 0:
			s = 0
		case n == 1:
			s = s&^sbFaint | sbBold
		case n == 2:
			s = s&^sbBold | sbFaint
		case n == 3:
			s |= sbItalic
		case n == 4:
			s |= sbUnderline
		case n == 5 || n == 6:
			s |= sbBlink
		case n == 9:
			s |= sbStrike
		case n == 21 || n == 22:
			s &^= sbBold | sbFaint
		case n == 23:
			s &^= sbItalic
		case n == 24:
			s &^= sbUnderline
		case n == 25:
			s &^= sbBlink
		case n == 29:
			s &^= sbStrike
		case n >= 30 && n <= 37:
			s.setFGColor(colorBase, uint32(n-30))
		case n == 38:
			i += s.extendedColor(params[i+1:], true)
		case n == 39:
			s.setFGColor(colorNone, 0)
		case n >= 40 && n <= 47:
			s.setBGColor(colorBase, uint32(n-40))
		case n == 48:
			i += s.extendedColor(params[i+1:], false)
		case n == 49:
			s.setBGColor(colorNone, 0)
		case n >= 90 && n <= 97:
			s.setFGColor(colorBase, uint32(n-90+8))
		case n >= 100 && n <= 107:
			s.setBGColor(colorBase, uint32(n-100+8))
		}
	}
	return s
}

// extendedColor handles the parameters following a 38 (foreground) or 48
// (background) code: "5;n" selects an xterm-256 index, "2;r;g;b" a direct
// RGB color. It returns the number of parameters consumed.
func (s *style) extendedColor(rest []string, foreground bool) int {
	if len(rest) == 0 {
		return 0
	}
	switch rest[0] {
	case "5":
		if len(rest) < 2 {
			return len(rest)
		}
		if v, err := strconv.ParseUint(rest[1], 10, 8); err == nil {
			if foreground {
				s.setFGColor(color8Bit, uint32(v))
			} else {
				s.setBGColor(color8Bit, uint32(v))
			}
		}
		return 2
	case "2":
		if len(rest) < 4 {
			return len(rest)
		}
		var rgb [3]uint64
		ok := true
		for j := range rgb {
			v, err := strconv.ParseUint(rest[1+j], 10, 8)
			if err != nil {
				ok = false
				break
			}
			rgb[j] = v
		}
		if ok {
			v := uint32(rgb[0])<<16 | uint32(rgb[1])<<8 | uint32(rgb[2])
			if foreground {
				s.setFGColor(color24Bit, v)
			} else {
				s.setBGColor(color24Bit, v)
			}
		}
		return 4
	}
	// unknown color space selector; skip it
	return 1
}

func colorCSS(t Theme, mode uint8, v uint32) string {
	switch mode {
	case colorBase:
		return t.ANSIColor(uint8(v))
	case color8Bit:
		return t.Color8Bit(uint8(v))
	case color24Bit:
		return fmt.Sprintf("#%06x", v)
	}
	return ""
}

// css renders the style as inline CSS declarations under the given theme.
// A plain style renders as the empty string.
func (s style) css(t Theme) string {
	var d []string
	if c := colorCSS(t, s.fgMode(), s.fgColor()); c != "" {
		d = append(d, "color:"+c)
	}
	if c := colorCSS(t, s.bgMode(), s.bgColor()); c != "" {
		d = append(d, "background-color:"+c)
	}
	if s&sbBold != 0 {
		d = append(d, "font-weight:bold")
	}
	if s&sbFaint != 0 {
		d = append(d, "opacity:0.67")
	}
	if s&sbItalic != 0 {
		d = append(d, "font-style:italic")
	}
	var deco []string
	if s&sbUnderline != 0 {
		deco = append(deco, "underline")
	}
	if s&sbStrike != 0 {
		deco = append(deco, "line-through")
	}
	if s&sbBlink != 0 {
		deco = append(deco, "blink")
	}
	if len(deco) > 0 {
		d = append(d, "text-decoration:"+strings.Join(deco, " "))
	}
	return strings.Join(d, ";")
}
