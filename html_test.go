package ansisenor

import (
	"bytes"
	"html"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var rendererTestCases = []struct {
	name  string
	input string
	want  string
}{
	{
		name:  "plain text passes through",
		input: "hello, world\n",
		want:  "hello, world\n",
	},
	{
		name:  "red error",
		input: "\x1b[31mERROR\x1b[0m: failed",
		want:  `<span style="color:#cd3131">ERROR</span>: failed`,
	},
	{
		name:  "markup characters are escaped",
		input: `a < b & c > "d" 'e'`,
		want:  `a &lt; b &amp; c &gt; &quot;d&quot; &#39;e&#39;`,
	},
	{
		name:  "bold green",
		input: "\x1b[1;32mok\x1b[0m",
		want:  `<span style="color:#0dbc79;font-weight:bold">ok</span>`,
	},
	{
		name:  "8-bit foreground",
		input: "\x1b[38;5;196mred\x1b[0m",
		want:  `<span style="color:#ff0000">red</span>`,
	},
	{
		name:  "24-bit background",
		input: "\x1b[48;2;1;2;3mx\x1b[0m",
		want:  `<span style="background-color:#010203">x</span>`,
	},
	{
		name:  "underline and strikethrough",
		input: "\x1b[4;9mx\x1b[0m",
		want:  `<span style="text-decoration:underline line-through">x</span>`,
	},
	{
		name:  "blink cleared by 25",
		input: "\x1b[5mx\x1b[25my",
		want:  `<span style="text-decoration:blink">x</span>y`,
	},
	{
		name:  "faint",
		input: "\x1b[2mdim\x1b[22mrest",
		want:  `<span style="opacity:0.67">dim</span>rest`,
	},
	{
		name:  "bright foreground",
		input: "\x1b[95mmagenta\x1b[0m",
		want:  `<span style="color:#d670d6">magenta</span>`,
	},
	{
		name:  "bright background",
		input: "\x1b[103mx\x1b[0m",
		want:  `<span style="background-color:#f5f543">x</span>`,
	},
	{
		name:  "foreground reset keeps background",
		input: "\x1b[31;44mX\x1b[39mY\x1b[0m",
		want:  `<span style="color:#cd3131;background-color:#2472c8">X</span><span style="background-color:#2472c8">Y</span>`,
	},
	{
		name:  "empty parameter resets",
		input: "\x1b[31mA\x1b[mB",
		want:  `<span style="color:#cd3131">A</span>B`,
	},
	{
		name:  "unknown SGR code is ignored",
		input: "\x1b[59mplain\x1b[0m",
		want:  "plain",
	},
	{
		name:  "cursor and erase sequences are dropped",
		input: "a\x1b[2Kb\x1b[1Ac",
		want:  "abc",
	},
	{
		name:  "clear screen and home are dropped",
		input: "\x1b[2J\x1b[Hhome",
		want:  "home",
	},
	{
		name:  "private mode sequence is dropped",
		input: "\x1b[?25lvisible",
		want:  "visible",
	},
	{
		name:  "OSC terminated by BEL is dropped",
		input: "\x1b]0;window title\x07text",
		want:  "text",
	},
	{
		name:  "OSC terminated by ST is dropped",
		input: "\x1b]8;;https://example.com\x1b\\link\x1b]8;;\x1b\\",
		want:  "link",
	},
	{
		name:  "charset designation is dropped",
		input: "a\x1b(Bb",
		want:  "ab",
	},
	{
		name:  "single-character escape is dropped",
		input: "a\x1bMb",
		want:  "ab",
	},
	{
		name:  "unterminated sequence at end of input",
		input: "x\x1b[31",
		want:  "x",
	},
	{
		name:  "bare escape at end of input",
		input: "x\x1b",
		want:  "x",
	},
	{
		name:  "control character aborts a sequence",
		input: "a\x1b[31\nb",
		want:  "a\nb",
	},
	{
		name:  "invalid UTF-8 is replaced",
		input: "ok\xffbad",
		want:  "ok�bad",
	},
}

func TestRender(t *testing.T) {
	for _, test := range rendererTestCases {
		got := string(Render([]byte(test.input), ThemeDark))
		if diff := cmp.Diff(got, test.want); diff != "" {
			t.Errorf("Failure for '%s':\nRender diff (-got +want):\n%s", test.name, diff)
		}
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	input := []byte("\x1b[31mERROR\x1b[0m: \x1b[1mfailed\x1b[0m\n")
	first := Render(input, ThemeDark)
	second := Render(input, ThemeDark)
	if !bytes.Equal(first, second) {
		t.Errorf("Render is not deterministic:\nfirst:  %q\nsecond: %q", first, second)
	}
}

func TestRenderPlainInputHasNoSpans(t *testing.T) {
	got := string(Render([]byte("no color here\njust text\n"), ThemeDark))
	if strings.Contains(got, "<span") {
		t.Errorf("expected no styling wrappers, got %q", got)
	}
}

var (
	tagRE   = regexp.MustCompile(`<[^>]+>`)
	colorRE = regexp.MustCompile(`#[0-9a-f]{6}`)
)

// Stripping all tags and unescaping entities must recover the literal text
// content of the input.
func TestRenderPreservesContent(t *testing.T) {
	input := "\x1b[31mERROR\x1b[0m: <failed> & \"done\"\n\x1b[1mbold\x1b[0m"
	want := "ERROR: <failed> & \"done\"\nbold"

	got := html.UnescapeString(tagRE.ReplaceAllString(string(Render([]byte(input), ThemeDark)), ""))
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("content diff (-got +want):\n%s", diff)
	}
}

// The two themes must produce the same span structure, differing only in
// palette-derived color values.
func TestRenderThemesDifferOnlyInPalette(t *testing.T) {
	input := []byte("\x1b[32mgreen\x1b[0m \x1b[1;44mboxed\x1b[0m plain\n")

	dark := colorRE.ReplaceAllString(string(Render(input, ThemeDark)), "#......")
	light := colorRE.ReplaceAllString(string(Render(input, ThemeLight)), "#......")
	if diff := cmp.Diff(dark, light); diff != "" {
		t.Errorf("structure diff (-dark +light):\n%s", diff)
	}
}
