package calendar

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr string // empty means valid
	}{
		{
			name: "valid request",
			req: Request{
				Year:  2025,
				Month: 2,
				Overlay: []Overlay{
					{Type: OverlayCircle, Days: []int{1, 15}},
				},
			},
		},
		{
			name:    "valid with empty overlay list",
			req:     Request{Year: 2025, Month: 2, Overlay: []Overlay{}},
		},
		{
			name:    "missing year",
			req:     Request{Month: 2, Overlay: []Overlay{}},
			wantErr: "Missing required fields",
		},
		{
			name:    "missing month",
			req:     Request{Year: 2025, Overlay: []Overlay{}},
			wantErr: "Missing required fields",
		},
		{
			name:    "missing overlay",
			req:     Request{Year: 2025, Month: 2},
			wantErr: "Missing required fields",
		},
		{
			name:    "year below range",
			req:     Request{Year: 1899, Month: 1, Overlay: []Overlay{}},
			wantErr: "Invalid year or month",
		},
		{
			name:    "year above range",
			req:     Request{Year: 2101, Month: 1, Overlay: []Overlay{}},
			wantErr: "Invalid year or month",
		},
		{
			name: "lower year bound accepted",
			req:  Request{Year: 1900, Month: 1, Overlay: []Overlay{}},
		},
		{
			name: "upper year bound accepted",
			req:  Request{Year: 2100, Month: 12, Overlay: []Overlay{}},
		},
		{
			name:    "month too large",
			req:     Request{Year: 2025, Month: 13, Overlay: []Overlay{}},
			wantErr: "Invalid year or month",
		},
		{
			name: "overlay with empty days",
			req: Request{
				Year: 2025, Month: 2,
				Overlay: []Overlay{{Type: OverlayCircle, Days: nil}},
			},
			wantErr: "Invalid overlay format",
		},
		{
			name: "overlay with missing type",
			req: Request{
				Year: 2025, Month: 2,
				Overlay: []Overlay{{Days: []int{1}}},
			},
			wantErr: "Invalid overlay format",
		},
		{
			name: "day past end of February",
			req: Request{
				Year: 2025, Month: 2,
				Overlay: []Overlay{{Type: OverlayCircle, Days: []int{29}}},
			},
			wantErr: "between 1 and 28",
		},
		{
			name: "day zero",
			req: Request{
				Year: 2025, Month: 2,
				Overlay: []Overlay{{Type: OverlayCircle, Days: []int{0}}},
			},
			wantErr: "between 1 and 28",
		},
		{
			name: "last day of leap February accepted",
			req: Request{
				Year: 2024, Month: 2,
				Overlay: []Overlay{{Type: OverlayCross, Days: []int{29}}},
			},
		},
		{
			name: "unknown overlay type",
			req: Request{
				Year: 2025, Month: 2,
				Overlay: []Overlay{{Type: "invalid-type", Days: []int{1}}},
			},
			wantErr: "circle, triangle, cross, diamond",
		},
		{
			name: "day range checked before overlay type",
			req: Request{
				Year: 2025, Month: 2,
				Overlay: []Overlay{
					{Type: "invalid-type", Days: []int{1}},
					{Type: OverlayCircle, Days: []int{30}},
				},
			},
			wantErr: "between 1 and 28",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(&tt.req)

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("ValidateRequest() unexpected error: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("ValidateRequest() expected error containing %q", tt.wantErr)
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error type = %T, want *ValidationError", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateRequestAcceptsAllOverlayTypes(t *testing.T) {
	for _, typ := range ValidOverlayTypes {
		req := Request{
			Year: 2025, Month: 2,
			Overlay: []Overlay{{Type: typ, Days: []int{1}}},
		}
		if err := ValidateRequest(&req); err != nil {
			t.Errorf("ValidateRequest with type %q returned error: %v", typ, err)
		}
	}
}
