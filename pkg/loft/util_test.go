package loft

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/Faultbox/archloft/pkg/math"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func near(a, b math.Vec2) bool {
	return a.Distance(b) < 1e-9
}

// frameProfile is a closed 4 point section with two lateral offsets.
func frameProfile(t *testing.T, closedPath bool) *Profile {
	t.Helper()
	p, err := NewProfile(true, closedPath,
		[]float64{0, 0.1},
		[]float64{0, 0.05, 0.05, 0},
		[]int{0, 0, 1, 1},
		[]MaterialID{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("NewProfile failed: %v", err)
	}
	return p
}

// stripProfile is an open two point section at a single offset.
func stripProfile(closedPath bool) *Profile {
	return &Profile{
		ClosedPath: closedPath,
		Xs:         []float64{0},
		Points:     []ProfilePoint{{XBucket: 0, Y: 0}, {XBucket: 0, Y: 1, Material: 5}},
	}
}
