// Package flagenv lets every flag also be set through an environment
// variable, so the same binary can be configured from a shell, a .env file or
// a service manager.
//
// A flag named "metrics-addr" with the prefix "SYSKEY_" is read from
// SYSKEY_METRICS_ADDR. Flags given on the command line win over the
// environment.
package flagenv

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// EnvName returns the variable that backs the named flag.
func EnvName(prefix, name string) string {
	return prefix + strings.ToUpper(strings.NewReplacer("-", "_", ".", "_").Replace(name))
}

// ParseSet assigns flags in set from the environment. Call it before
// set.Parse so the command line can still override.
func ParseSet(prefix string, set *flag.FlagSet) error {
	var err error
	set.VisitAll(func(f *flag.Flag) {
		if err != nil {
			return
		}
		key := EnvName(prefix, f.Name)
		val, ok := os.LookupEnv(key)
		if !ok || val == "" {
			return
		}
		if serr := set.Set(f.Name, val); serr != nil {
			err = fmt.Errorf("flagenv: invalid value %q for %s: %w", val, key, serr)
		}
	})
	return err
}

// ParseWithPrefix fills flag.CommandLine from the environment and then parses
// os.Args. Bad environment values are fatal, the same as bad flags.
func ParseWithPrefix(prefix string) {
	if err := ParseSet(prefix, flag.CommandLine); err != nil {
		fmt.Fprintln(flag.CommandLine.Output(), err)
		os.Exit(2)
	}
	if !flag.Parsed() {
		flag.Parse()
	}
}
