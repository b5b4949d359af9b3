package scan

import (
	"errors"
	"testing"
)

func TestPolicyValidate(t *testing.T) {
	cases := []struct {
		name string
		p    Policy
		ok   bool
	}{
		{"default", DefaultPolicy, true},
		{"unlimited", Policy{Initial: 1, Step: 1}, true},
		{"capped", Policy{Initial: 16, Step: 8, Max: 64}, true},
		{"zero initial", Policy{Step: 8}, false},
		{"negative initial", Policy{Initial: -1, Step: 8}, false},
		{"zero step", Policy{Initial: 8}, false},
		{"negative max", Policy{Initial: 8, Step: 8, Max: -2}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.p.Validate()
			if c.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !c.ok {
				if !errors.Is(err, ErrPolicy) {
					t.Errorf("got %v, want ErrPolicy", err)
				}
			}
		})
	}
}

func TestPolicyUnlimited(t *testing.T) {
	if !(Policy{Initial: 1, Step: 1}).Unlimited() {
		t.Error("Max == 0 should be unlimited")
	}
	if (Policy{Initial: 1, Step: 1, Max: 10}).Unlimited() {
		t.Error("finite Max should not be unlimited")
	}
}
