package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPorts(t *testing.T) {
	full := newTestPorts()

	ports := NewPorts(full.Session, full.Render)

	assert.Same(t, full.Session, ports.Session)
	assert.Nil(t, ports.Theme)
	assert.Nil(t, ports.Settings)
	assert.NoError(t, ports.Validate())
}

func TestPorts_Validate(t *testing.T) {
	full := newTestPorts()

	tests := []struct {
		name  string
		ports *Ports
		want  error
	}{
		{"nil", nil, ErrInvalidPorts},
		{"missing session", &Ports{Render: full.Render}, ErrMissingSessionController},
		{"missing render", &Ports{Session: full.Session}, ErrMissingRenderService},
		{"optional services absent", &Ports{Session: full.Session, Render: full.Render}, nil},
		{"complete", full, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
