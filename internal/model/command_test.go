package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorizeCommand_Validate(t *testing.T) {
	tests := []struct {
		name           string
		cmd            CategorizeCommand
		wantViolations int
	}{
		{
			name:           "valid command",
			cmd:            CategorizeCommand{TransactionID: "t1", CategoryID: "c1", Scope: ScopeSingle},
			wantViolations: 0,
		},
		{
			name:           "empty transaction id",
			cmd:            CategorizeCommand{CategoryID: "c1", Scope: ScopePattern},
			wantViolations: 1,
		},
		{
			name:           "empty transaction and category ids reported together",
			cmd:            CategorizeCommand{Scope: ScopeAll},
			wantViolations: 2,
		},
		{
			name:           "everything wrong",
			cmd:            CategorizeCommand{Scope: "bogus"},
			wantViolations: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tt.cmd.Validate(), tt.wantViolations)
		})
	}
}

func TestTagCommand_Validate(t *testing.T) {
	tests := []struct {
		name           string
		cmd            TagCommand
		wantViolations int
	}{
		{
			name:           "valid command",
			cmd:            TagCommand{TransactionID: "t1", Tag: "subscription", Scope: ScopePattern},
			wantViolations: 0,
		},
		{
			name:           "empty tag",
			cmd:            TagCommand{TransactionID: "t1", Scope: ScopeSingle},
			wantViolations: 1,
		},
		{
			name:           "invalid scope",
			cmd:            TagCommand{TransactionID: "t1", Tag: "x", Scope: "everything"},
			wantViolations: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tt.cmd.Validate(), tt.wantViolations)
		})
	}
}

func TestValidScope(t *testing.T) {
	assert.True(t, ValidScope(ScopeSingle))
	assert.True(t, ValidScope(ScopePattern))
	assert.True(t, ValidScope(ScopeAll))
	assert.False(t, ValidScope(""))
	assert.False(t, ValidScope("global"))
}
