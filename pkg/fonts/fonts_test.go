package fonts

import (
	"testing"

	"github.com/netplot/netplot/pkg/style"
)

func TestFace(t *testing.T) {
	tests := []struct {
		name string
		font style.Font
	}{
		{name: "SansNormal", font: style.Font{Family: style.FamilySans, Weight: style.WeightNormal, Size: 12}},
		{name: "SansBold", font: style.Font{Family: style.FamilySans, Weight: style.WeightBold, Size: 12}},
		{name: "MonoNormal", font: style.Font{Family: style.FamilyMono, Weight: style.WeightNormal, Size: 10}},
		{name: "MonoBold", font: style.Font{Family: style.FamilyMono, Weight: style.WeightBold, Size: 16}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			face, err := Face(tt.font)
			if err != nil {
				t.Fatalf("Face: %v", err)
			}
			if face == nil {
				t.Fatal("Face returned nil")
			}
			if m := face.Metrics(); m.Height <= 0 {
				t.Errorf("metrics height = %v, want > 0", m.Height)
			}
		})
	}
}

func TestFaceInvalid(t *testing.T) {
	if _, err := Face(style.Font{Family: "serif", Weight: "normal", Size: 12}); err == nil {
		t.Error("expected error for unsupported family")
	}
	if _, err := Face(style.Font{Family: style.FamilySans, Weight: style.WeightNormal, Size: -1}); err == nil {
		t.Error("expected error for non-positive size")
	}
}
