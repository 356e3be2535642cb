// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestDBToLinear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		db   float64
		want float64
	}{
		{name: "unity", db: 0.0, want: 1.0},
		{name: "-6 dB is about half", db: -6.0, want: 0.501187},
		{name: "-20 dB is a tenth", db: -20.0, want: 0.1},
		{name: "+20 dB is tenfold", db: 20.0, want: 10.0},
		{name: "-120 dB is near silence", db: -120.0, want: 1e-6},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := DBToLinear(tt.db)
			if math.Abs(got-tt.want) > 1e-6*tt.want+1e-12 {
				t.Errorf("DBToLinear(%v) = %v, want %v", tt.db, got, tt.want)
			}
		})
	}
}

func TestLinearToDB(t *testing.T) {
	t.Parallel()

	if got := LinearToDB(1.0); got != 0.0 {
		t.Errorf("LinearToDB(1) = %v, want 0", got)
	}
	if got := LinearToDB(0.1); math.Abs(got+20.0) > 1e-9 {
		t.Errorf("LinearToDB(0.1) = %v, want -20", got)
	}
}

func TestDBLinearRoundTrip(t *testing.T) {
	t.Parallel()

	for _, db := range []float64{-120.0, -3.0, 0.0, 6.0} {
		got := LinearToDB(DBToLinear(db))
		if math.Abs(got-db) > 1e-9 {
			t.Errorf("round trip of %v dB = %v", db, got)
		}
	}
}
