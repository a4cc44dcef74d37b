package testresult

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSeverityLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    SeverityLevel
		wantErr bool
	}{
		{"minimal", SeverityMinimal, false},
		{"MILD", SeverityMild, false},
		{" Moderate ", SeverityModerate, false},
		{"severe", SeveritySevere, false},
		{"extreme", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSeverityLevel(tt.in)
			if tt.wantErr {
				assert.NotNil(t, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
