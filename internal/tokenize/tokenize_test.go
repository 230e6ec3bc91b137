package tokenize

import (
	"reflect"
	"testing"
)

func TestLine(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"latin word and digits", "Chapter 12", []string{"Chapter", " ", "12"}},
		{"han chars stand alone", "第二十章", []string{"第", "二", "十", "章"}},
		{"mixed punctuation", "Ch.1", []string{"Ch", ".", "1"}},
		{"empty", "", nil},
		{"single other char", "!", []string{"!"}},
		{"fullwidth digit run", "１２３", []string{"１２３"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Line(c.in)
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("Line(%q) = %#v, want %#v", c.in, got, c.want)
			}
		})
	}
}
