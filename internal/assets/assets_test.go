package assets

import (
	"strings"
	"testing"
)

func TestProgramSources(t *testing.T) {
	tests := []struct {
		name     string
		uniforms []string
	}{
		{"phong", []string{"uModel", "uNormal", "uView", "uProjection", "uLightColor", "uLightPos", "uViewPos", "uShininess", "uAmbientStrength", "uDiffuseStrength", "uSpecularStrength"}},
		{"unlit", []string{"uModel", "uView", "uProjection"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vs, fs, err := Program(tt.name)
			if err != nil {
				t.Fatalf("load failed: %v", err)
			}
			src := vs + fs
			for _, u := range tt.uniforms {
				if !strings.Contains(src, "uniform") || !strings.Contains(src, " "+u+";") {
					t.Errorf("expected uniform %s in %s program", u, tt.name)
				}
			}
		})
	}
}

func TestProgramMissing(t *testing.T) {
	if _, _, err := Program("toon"); err == nil {
		t.Error("expected error for unknown program")
	}
}

func TestCarModelEmbedded(t *testing.T) {
	if len(CarOBJ) == 0 {
		t.Fatal("car model is empty")
	}
	if !strings.Contains(string(CarOBJ), "\nf ") {
		t.Error("car model has no faces")
	}
}
