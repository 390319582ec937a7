// internal/cli/root_test.go
package lmdiff

import (
	"testing"

	"github.com/mwiater/lmdiff/internal/appconfig"
)

func TestRootPersistentFlags(t *testing.T) {
	t.Parallel()

	flags := rootCmd.PersistentFlags()
	for _, tc := range []struct {
		name string
		def  string
	}{
		{name: "config", def: appconfig.DefaultConfigPath},
		{name: "debug", def: "false"},
		{name: "challenge", def: appconfig.DefaultChallenge},
		{name: "entropy-interval", def: "10"},
		{name: "strict", def: "false"},
		{name: "color", def: "auto"},
	} {
		f := flags.Lookup(tc.name)
		if f == nil {
			t.Fatalf("missing persistent flag %q", tc.name)
		}
		if f.DefValue != tc.def {
			t.Fatalf("flag %q default = %q, want %q", tc.name, f.DefValue, tc.def)
		}
	}
}

func TestRootSubcommands(t *testing.T) {
	t.Parallel()

	want := map[string]bool{"diff": false, "view": false, "legend": false, "show": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("subcommand %q not registered", name)
		}
	}
}
