package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value form",
			args:    []string{"-a", "http://localhost:8000", "-x", "noise"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://localhost:8000"},
		},
		{
			name:    "equals form",
			args:    []string{"-config=conf.json", "-other=1"},
			allowed: []string{"-config"},
			want:    []string{"-config=conf.json"},
		},
		{
			name:    "flag followed by another flag keeps no value",
			args:    []string{"-a", "-b", "v"},
			allowed: []string{"-a", "-b"},
			want:    []string{"-a", "-b", "v"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "1"},
			allowed: nil,
			want:    []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FilterArgs(tc.args, tc.allowed))
		})
	}
}
