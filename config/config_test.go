package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignificantDigits_Default(t *testing.T) {
	Reset()
	assert.Equal(t, DefaultSignificantDigits, SignificantDigits())
}

func TestSignificantDigits_Set(t *testing.T) {
	t.Cleanup(Reset)

	require.NoError(t, SetSignificantDigits(3))
	assert.Equal(t, 3, SignificantDigits())

	require.NoError(t, SetSignificantDigits(0))
	assert.Equal(t, 0, SignificantDigits(), "zero is a valid digit count")

	err := SetSignificantDigits(-2)
	assert.ErrorIs(t, err, ErrInvalidDigits)
	assert.Equal(t, 0, SignificantDigits(), "rejected value must not be stored")
}

func TestLoad(t *testing.T) {
	t.Cleanup(Reset)

	tests := []struct {
		name    string
		input   string
		digits  int
		wantErr error
	}{
		{
			name:   "value present",
			input:  `{"params": {"significant-digits": 5, "other": true}, "ns": {}}`,
			digits: 5,
		},
		{
			name:   "value absent",
			input:  `{"params": {}}`,
			digits: DefaultSignificantDigits,
		},
		{
			name:    "negative",
			input:   `{"params": {"significant-digits": -1}}`,
			wantErr: ErrInvalidDigits,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reset()
			cfg, err := Load(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, cfg.Apply())
			assert.Equal(t, tt.digits, SignificantDigits())
		})
	}
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(strings.NewReader(`{"params": `))
	assert.Error(t, err)
}
