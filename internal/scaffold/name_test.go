package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{name: "my-app"},
		{name: "My App"},
		{name: "  padded  "},
		{name: "", wantErr: true},
		{name: "   ", wantErr: true},
		{name: ".", wantErr: true},
		{name: "..", wantErr: true},
		{name: "nested/app", wantErr: true},
		{name: `win\app`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidName)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPackageName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "my-app", want: "my-app"},
		{in: "My App", want: "my-app"},
		{in: "Café!", want: "caf"},
		{in: ".hidden", want: "hidden"},
		{in: "_private.pkg", want: "private.pkg"},
		{in: "@scope~x", want: "@scope~x"},
		{in: "!!!", want: "app"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, PackageName(tt.in))
		})
	}
}
