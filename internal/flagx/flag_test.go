package flagx

import (
	"os"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "vault.env", "-f", "export.1pux"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c", "vault.env"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"--config=alt.env", "-f", "export.1pux"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=alt.env"},
		},
		{
			name:         "both short and long present, preserve order",
			args:         []string{"--config=first.env", "-c", "second.env", "-x", "1"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=first.env", "-c", "second.env"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept as-is",
			args:         []string{"-c"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c"},
		},
		{
			name:         "flag followed by another flag (no value)",
			args:         []string{"-c", "-notvalue"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c"},
		},
		{
			name:         "multiple allowed flags kept",
			args:         []string{"-f", "export.1pux", "-c", "vault.env", "--other", "x"},
			allowedFlags: []string{"-c", "-f"},
			want:         []string{"-f", "export.1pux", "-c", "vault.env"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{},
		},
		{
			name:         "path with spaces remains single arg",
			args:         []string{"-c", "/home/user/vault.env"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "/home/user/vault.env"},
		},
		{
			name:         "do not treat next dash-starting token as value",
			args:         []string{"-c", "--config=alt.env"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c", "--config=alt.env"},
		},
		{
			name:         "repeated allowed flag is preserved in order",
			args:         []string{"-c", "one.env", "-c", "two.env"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "one.env", "-c", "two.env"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowedFlags)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("FilterArgs() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func Test_ConfigFileFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short -c with value", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "/path/short.env"}
		assert.Equal(t, "/path/short.env", ConfigFileFlag())
	})

	t.Run("long -config with value", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", "/path/long.env"}
		assert.Equal(t, "/path/long.env", ConfigFileFlag())
	})

	t.Run("unknown flags are ignored", func(t *testing.T) {
		os.Args = []string{"testbin", "-x", "1", "-y", "2"}
		assert.Empty(t, ConfigFileFlag())
	})

	t.Run("multiple flags, last wins", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "/path/1.env", "-config", "/path/2.env"}
		assert.Equal(t, "/path/2.env", ConfigFileFlag())
	})
}
