package scan

import "fmt"

// Policy governs how an owned scan buffer starts small and grows under
// backpressure. It is plain data; a Policy is validated where it is
// accepted, never mid-decode.
type Policy struct {
	Initial int // starting capacity in bytes
	Step    int // growth increment in bytes
	Max     int // hard cap in bytes; 0 means unlimited
}

// DefaultPolicy is the policy used when none is configured.
var DefaultPolicy = Policy{Initial: 4096, Step: 4096}

func (p Policy) Validate() error {
	if p.Initial <= 0 {
		return fmt.Errorf("%w: initial size %d", ErrPolicy, p.Initial)
	}
	if p.Step <= 0 {
		return fmt.Errorf("%w: step size %d", ErrPolicy, p.Step)
	}
	if p.Max < 0 {
		return fmt.Errorf("%w: max size %d", ErrPolicy, p.Max)
	}
	return nil
}

// Unlimited reports whether the policy places no cap on buffer growth.
func (p Policy) Unlimited() bool {
	return p.Max == 0
}
