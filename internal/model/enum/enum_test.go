package enum

import (
	"testing"

	"mindmeter/packages/response"

	"github.com/stretchr/testify/assert"
)

type color string

const (
	red  color = "RED"
	blue color = "BLUE"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    color
		wantErr bool
	}{
		{"精确匹配", "RED", red, false},
		{"小写", "blue", blue, false},
		{"前后空白", "  Red\t", red, false},
		{"未知值", "GREEN", "", true},
		{"空串", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse("color", tt.raw, red, blue)
			if tt.wantErr {
				assert.NotNil(t, err)
				assert.Equal(t, response.InvalidParameter, err.Code)
				assert.Contains(t, err.Msg, "color")
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
