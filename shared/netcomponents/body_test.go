package netcomponents

import "testing"

func TestLerpNetBody(t *testing.T) {
	from := NetBodyData{Kind: 1, X: 0, Y: 100, W: 100, H: 75, Label: "old"}
	to := NetBodyData{Kind: 2, X: 50, Y: 200, W: 225, H: 169, Label: "new"}

	tests := []struct {
		name string
		t    float64
		want NetBodyData
	}{
		{"start", 0, NetBodyData{Kind: 2, X: 0, Y: 100, W: 100, H: 75, Label: "new"}},
		{"half", 0.5, NetBodyData{Kind: 2, X: 25, Y: 150, W: 162.5, H: 122, Label: "new"}},
		{"end", 1, to},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := *LerpNetBody(from, to, tt.t); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
