package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigArgs(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{args: []string{"analyze"}, want: nil},
		{args: []string{"-c", "joint.yml", "analyze", "--series"}, want: []string{"-c", "joint.yml"}},
		{args: []string{"report", "--config", "joint.yml", "--pdf", "out.pdf"}, want: []string{"-c", "joint.yml"}},
		{args: []string{"analyze", "--config=joint.yml"}, want: []string{"-c=joint.yml"}},
		{args: []string{"-c=joint.yml", "report"}, want: []string{"-c=joint.yml"}},
		{args: []string{"analyze", "-c"}, want: []string{"-c"}},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, configArgs(tt.args), "%v", tt.args)
	}
}
