package errors

import (
	"testing"
)

func TestValidateNoteID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "note-1", false},
		{"valid uuid-ish", "9f2c4e1a-0b3d-4f5e-8a6b-7c8d9e0f1a2b", false},
		{"valid with underscore", "design_review", false},
		{"valid with dot", "q3.roadmap", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 200)), true},
		{"path traversal ..", "foo/../bar", true},
		{"path traversal //", "foo//bar", true},
		{"null byte", "foo\x00bar", true},
		{"backslash", "foo\\bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
		{"carriage return", "foo\rbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNoteID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNoteID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		wantErr       bool
	}{
		{"valid", 120, 80, false},
		{"valid fractional", 0.5, 0.25, false},
		{"zero width", 0, 80, true},
		{"zero height", 120, 0, true},
		{"negative width", -1, 80, true},
		{"negative height", 120, -0.1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimensions(tt.width, tt.height)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimensions(%v, %v) error = %v, wantErr %v", tt.width, tt.height, err, tt.wantErr)
			}
		})
	}
}

func TestValidateScale(t *testing.T) {
	tests := []struct {
		name    string
		scale   float64
		wantErr bool
	}{
		{"unit", 1, false},
		{"zoomed in", 2.5, false},
		{"zoomed out", 0.25, false},
		{"zero", 0, true},
		{"negative", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScale(tt.scale)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateScale(%v) error = %v, wantErr %v", tt.scale, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid relative", "boards/roadmap.toml", false},
		{"valid simple", "roadmap.toml", false},

		{"empty", "", true},
		{"absolute", "/etc/passwd", true},
		{"traversal", "boards/../../secret", true},
		{"backslash", "boards\\roadmap.toml", true},
		{"null byte", "boards/\x00.toml", true},
		{"too long", string(make([]byte, 501)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateUUID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "9f2c4e1a-0b3d-4f5e-8a6b-7c8d9e0f1a2b", false},
		{"valid uppercase", "9F2C4E1A-0B3D-4F5E-8A6B-7C8D9E0F1A2B", false},
		{"not a uuid", "note-1", true},
		{"empty", "", true},
		{"wrong grouping", "9f2c4e1a0b3d-4f5e-8a6b-7c8d9e0f1a2b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUUID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUUID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
