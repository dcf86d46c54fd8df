package estimating

import (
	"errors"
	"testing"

	"github.com/brushline/estimator-backend/internal/types"
)

func TestComputeDerivedQuantity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		size    float64
		rate    float64
		want    float64
		wantErr error
	}{
		{
			name: "exact_division",
			size: 250,
			rate: 100,
			want: 2.5,
		},
		{
			name: "whole_days",
			size: 300,
			rate: 100,
			want: 3,
		},
		{
			name: "fractional_result_not_rounded",
			size: 100,
			rate: 3,
			want: 100.0 / 3.0,
		},
		{
			name: "zero_size_is_zero_days",
			size: 0,
			rate: 80,
			want: 0,
		},
		{
			name:    "zero_rate_rejected",
			size:    250,
			rate:    0,
			wantErr: ErrNonPositiveOutput,
		},
		{
			name:    "negative_rate_rejected",
			size:    250,
			rate:    -10,
			wantErr: ErrNonPositiveOutput,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ComputeDerivedQuantity(tc.size, &types.Output{OutputValue: tc.rate, OutputUnit: types.OutputUnitSqFt})
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("unexpected error: got=%v want=%v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("ComputeDerivedQuantity(%v, rate=%v)=%v, want %v", tc.size, tc.rate, got, tc.want)
			}
		})
	}
}

func TestComputeDerivedQuantityNilOutput(t *testing.T) {
	t.Parallel()
	if _, err := ComputeDerivedQuantity(100, nil); !errors.Is(err, ErrNoOutput) {
		t.Fatalf("unexpected error: got=%v want=%v", err, ErrNoOutput)
	}
}
