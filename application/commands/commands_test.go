package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateReflectionCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     CreateReflectionCommand
		wantErr bool
	}{
		{"valid", CreateReflectionCommand{UserID: "u1", Content: "a quiet morning"}, false},
		{"missing user", CreateReflectionCommand{Content: "a quiet morning"}, true},
		{"missing content", CreateReflectionCommand{UserID: "u1"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSetThemeCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     SetThemeCommand
		wantErr bool
	}{
		{"known theme", SetThemeCommand{UserID: "u1", Theme: "love"}, false},
		{"case and whitespace folded", SetThemeCommand{UserID: "u1", Theme: "  Wisdom  "}, false},
		{"empty theme clears", SetThemeCommand{UserID: "u1", Theme: ""}, false},
		{"unknown theme", SetThemeCommand{UserID: "u1", Theme: "nonsense"}, true},
		{"missing user", SetThemeCommand{Theme: "love"}, true},
		{"overlong theme", SetThemeCommand{UserID: "u1", Theme: strings.Repeat("x", 65)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
