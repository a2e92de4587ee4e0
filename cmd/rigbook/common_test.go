package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommonOptions_ValidateFlags(t *testing.T) {
	tests := []struct {
		name    string
		opts    CommonOptions
		verbose bool
		wantErr bool
		errMsg  string
	}{
		{
			name: "defaults",
			opts: DefaultCommonOptions(),
		},
		{
			name: "valid format json",
			opts: CommonOptions{Format: "json"},
		},
		{
			name:    "verbose and quiet",
			opts:    CommonOptions{Format: "table", Quiet: true},
			verbose: true,
			wantErr: true,
			errMsg:  "mutually exclusive",
		},
		{
			name:    "invalid format",
			opts:    CommonOptions{Format: "sarif"},
			wantErr: true,
			errMsg:  "invalid format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Set("verbose", tt.verbose)
			t.Cleanup(func() { viper.Set("verbose", false) })

			err := tt.opts.ValidateFlags()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDefaultCommonOptions(t *testing.T) {
	opts := DefaultCommonOptions()

	assert.Empty(t, opts.Format)
	assert.True(t, opts.Indent)
	assert.False(t, opts.Quiet)
}
