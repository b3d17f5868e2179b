package theme

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestRGBA(t *testing.T) {
	tests := []struct {
		rgb     string
		alpha   float64
		want    string
		wantErr bool
	}{
		{rgb: "255, 255, 255", alpha: 1, want: "#ffffffff"},
		{rgb: "255, 255, 255", alpha: 0.2, want: "#ffffff33"},
		{rgb: "0,0,0", alpha: 0, want: "#00000000"},
		{rgb: "0, 0, 0", alpha: 3, want: "#000000ff"},
		{rgb: "0, 0", wantErr: true},
		{rgb: "0, 0, 256", wantErr: true},
	}
	for _, tt := range tests {
		got, err := RGBA(tt.rgb, tt.alpha)
		if (err != nil) != tt.wantErr {
			t.Errorf("RGBA(%q) error = %v, wantErr %v", tt.rgb, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("RGBA(%q, %v) = %q, want %q", tt.rgb, tt.alpha, got, tt.want)
		}
	}
}

func TestBlend(t *testing.T) {
	black := colorful.Color{}
	got, err := Blend("255, 255, 255", 1, black)
	if err != nil {
		t.Fatal(err)
	}
	if got.Hex() != "#ffffff" {
		t.Errorf("Blend opaque white = %s", got.Hex())
	}
	got, _ = Blend("255, 255, 255", 0, black)
	if got.Hex() != "#000000" {
		t.Errorf("Blend transparent = %s", got.Hex())
	}
}

func TestColorFor(t *testing.T) {
	if c, ok := ColorFor(SeverityDanger); !ok || c != DefaultPalette.Danger {
		t.Errorf("ColorFor(danger) = %q, %v", c, ok)
	}
	if _, ok := ColorFor(SeverityNormal); ok {
		t.Error("ColorFor(normal) should not colour")
	}
}

func TestParseRGBA(t *testing.T) {
	rgb, alpha, ok := ParseRGBA("rgba(255, 0, 10, 0.5)")
	if !ok || rgb != "255, 0, 10" || alpha != 0.5 {
		t.Errorf("ParseRGBA = %q, %v, %v", rgb, alpha, ok)
	}
	for _, bad := range []string{"", "red", "rgba(1)", "rgba(1, 2, 3, x)"} {
		if _, _, ok := ParseRGBA(bad); ok {
			t.Errorf("ParseRGBA(%q) ok, want failure", bad)
		}
	}
}
