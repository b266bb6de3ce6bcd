package models

import "testing"

func TestAvailableQuantity(t *testing.T) {
	cases := []struct {
		name string
		tk   *Toolkit
		want int
	}{
		{"nil toolkit", nil, 0},
		{"unset", &Toolkit{}, 0},
		{"positive", &Toolkit{Quantity: 5, Available: 3}, 3},
		{"negative clamps", &Toolkit{Quantity: 5, Available: -2}, 0},
	}
	for _, tc := range cases {
		if got := tc.tk.AvailableQuantity(); got != tc.want {
			t.Errorf("%s: AvailableQuantity = %d; want %d", tc.name, got, tc.want)
		}
	}
}

func TestValidCondition(t *testing.T) {
	for _, c := range []string{ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor} {
		if !ValidCondition(c) {
			t.Errorf("ValidCondition(%q) = false", c)
		}
	}
	for _, c := range []string{"", "broken", "GOOD"} {
		if ValidCondition(c) {
			t.Errorf("ValidCondition(%q) = true", c)
		}
	}
}
