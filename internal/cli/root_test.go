package cli

import (
	"reflect"
	"testing"
)

func TestNormalizeArgsRoutesEdgeLength(t *testing.T) {
	cases := []struct {
		args []string
		want []string
	}{
		{
			[]string{"3", "2X1", "2Y1", "2Z1"},
			[]string{"run", "--", "3", "2X1", "2Y1", "2Z1"},
		},
		{
			[]string{"-3", "2X1", "2Y1", "2Z1"},
			[]string{"run", "--", "-3", "2X1", "2Y1", "2Z1"},
		},
		{
			[]string{"--save", "-2", "X0"},
			[]string{"run", "--save", "--", "-2", "X0"},
		},
		{
			[]string{"history"},
			[]string{"history"},
		},
		{
			[]string{"walk", "3", "X0"},
			[]string{"walk", "3", "X0"},
		},
		{
			[]string{"--help"},
			[]string{"--help"},
		},
		{
			nil,
			nil,
		},
	}
	for _, tc := range cases {
		if got := normalizeArgs(tc.args); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("normalizeArgs(%v) = %v, want %v", tc.args, got, tc.want)
		}
	}
}

func TestPlural(t *testing.T) {
	if plural(1) != "" {
		t.Error("plural(1) should be empty")
	}
	if plural(0) != "s" || plural(2) != "s" {
		t.Error("plural should add s for counts other than 1")
	}
	var explored uint64 = 23351139
	if plural(explored) != "s" {
		t.Error("plural should accept exploratory-move counters without conversion")
	}
}
