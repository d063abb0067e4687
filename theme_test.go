package ansisenor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseTheme(t *testing.T) {
	for _, test := range []struct {
		input   string
		want    Theme
		wantErr bool
	}{
		{input: "dark", want: ThemeDark},
		{input: "light", want: ThemeLight},
		{input: "LIGHT", want: ThemeLight},
		{input: "Dark", want: ThemeDark},
		{input: "solarized", wantErr: true},
		{input: "", wantErr: true},
	} {
		got, err := ParseTheme(test.input)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseTheme(%q) error = %v, wantErr %v", test.input, err, test.wantErr)
			continue
		}
		if err == nil && got != test.want {
			t.Errorf("ParseTheme(%q) = %v, want %v", test.input, got, test.want)
		}
	}
}

func TestThemePageColors(t *testing.T) {
	if got, want := ThemeDark.Background(), "#1e1e1e"; got != want {
		t.Errorf("ThemeDark.Background() = %q, want %q", got, want)
	}
	if got, want := ThemeDark.Foreground(), "#d4d4d4"; got != want {
		t.Errorf("ThemeDark.Foreground() = %q, want %q", got, want)
	}
	if got, want := ThemeLight.Background(), "#ffffff"; got != want {
		t.Errorf("ThemeLight.Background() = %q, want %q", got, want)
	}
	if got, want := ThemeLight.Foreground(), "#24292e"; got != want {
		t.Errorf("ThemeLight.Foreground() = %q, want %q", got, want)
	}
}

var color8BitTestCases = []struct {
	name  string
	theme Theme
	index uint8
	want  string
}{
	{name: "base palette dark", theme: ThemeDark, index: 1, want: "#cd3131"},
	{name: "base palette light", theme: ThemeLight, index: 2, want: "#00bc00"},
	{name: "bright palette dark", theme: ThemeDark, index: 15, want: "#ffffff"},
	{name: "cube black", theme: ThemeDark, index: 16, want: "#000000"},
	{name: "cube blue", theme: ThemeDark, index: 17, want: "#00005f"},
	{name: "cube red", theme: ThemeDark, index: 196, want: "#ff0000"},
	{name: "cube white", theme: ThemeDark, index: 231, want: "#ffffff"},
	{name: "grayscale low", theme: ThemeDark, index: 232, want: "#080808"},
	{name: "grayscale high", theme: ThemeDark, index: 255, want: "#eeeeee"},
}

func TestColor8Bit(t *testing.T) {
	for _, test := range color8BitTestCases {
		got := test.theme.Color8Bit(test.index)
		if diff := cmp.Diff(got, test.want); diff != "" {
			t.Errorf("Failure for '%s':\nColor8Bit(%d) diff (-got +want):\n%s", test.name, test.index, diff)
		}
	}
}
