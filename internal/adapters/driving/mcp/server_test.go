package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Ports)
		wantErr error
	}{
		{"all set", func(*Ports) {}, nil},
		{"missing docs", func(p *Ports) { p.Docs = nil }, ErrMissingDocService},
		{"missing templates", func(p *Ports) { p.Templates = nil }, ErrMissingTemplateService},
		{"missing insights", func(p *Ports) { p.Insights = nil }, ErrMissingInsightService},
		{"missing refresh", func(p *Ports) { p.Refresh = nil }, ErrMissingRefreshService},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ports := testPorts()
			tc.mutate(ports)
			err := ports.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	s, err := NewServer(testPorts())
	require.NoError(t, err)
	assert.NotNil(t, s.server)
}

func TestNewServer_InvalidPorts(t *testing.T) {
	ports := testPorts()
	ports.Refresh = nil

	_, err := NewServer(ports)
	assert.ErrorIs(t, err, ErrMissingRefreshService)
}
