package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMultiStringFlagAppendsOnSet(t *testing.T) {
	var concrete MultiStringFlag
	iface := &concrete

	require.NoError(t, iface.Set("foo"))
	require.NoError(t, iface.Set("bar"))

	require.EqualError(t, iface.Set(""), "value cannot be empty")

	require.Equal(t, MultiStringFlag{value: []string{"foo", "bar"}}, concrete)
	require.Equal(t, "foo,bar", iface.String())
}

func TestMultiStringFlag_Split(t *testing.T) {
	tests := []struct {
		name       string
		s          *MultiStringFlag
		wantResult []string
	}{
		{
			name: "empty_string",
			s:    &MultiStringFlag{}, // -flag ""
		},
		{
			name:       "one_value",
			s:          &MultiStringFlag{value: []string{":8080"}}, // -flag ":8080"
			wantResult: []string{":8080"},
		},
		{
			name:       "blank_values_are_dropped",
			s:          &MultiStringFlag{value: []string{":8080", "", " :8081 "}}, // -flag ":8080,, :8081 "
			wantResult: []string{":8080", ":8081"},
		},
		{
			name:       "multiple_values_in_one_string",
			s:          &MultiStringFlag{value: []string{"127.0.0.1:80,[::1]:80"}}, // -flag "127.0.0.1:80,[::1]:80"
			wantResult: []string{"127.0.0.1:80", "[::1]:80"},
		},
		{
			name:       "different_separator",
			s:          &MultiStringFlag{value: []string{"value1;value2"}, separator: ";"}, // -flag "value1;value2"
			wantResult: []string{"value1", "value2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.wantResult, tt.s.Split())
		})
	}
}
