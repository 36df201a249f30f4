// Package internal is the startup plumbing shared by syskey's commands.
package internal

import (
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/posener/complete"

	"pkg.jsn.cam/syskey/flagenv"
)

var (
	licenseShow = flag.Bool("licenses", false, "print the software licenses and exit")
	versionShow = flag.Bool("version", false, "print build information and exit")
)

// HandleStartup loads .env, answers shell completion, applies environment
// overrides with envPrefix, parses flags and deals with -licenses and
// -version. Call it at the top of main after all flags are declared.
func HandleStartup(envPrefix string) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("can't load .env", "err", err)
	}

	cmp := complete.New(filepath.Base(os.Args[0]), complete.Command{Flags: completionFlags(flag.CommandLine)})
	if cmp.Complete() {
		os.Exit(0)
	}

	flagenv.ParseWithPrefix(envPrefix)

	if *licenseShow {
		WriteLicenses(os.Stdout)
		os.Exit(0)
	}

	if *versionShow {
		if err := WriteBuildInfo(os.Stdout); err != nil {
			slog.Error("can't print build info", "err", err)
			os.Exit(1)
		}
		os.Exit(0)
	}
}

func completionFlags(set *flag.FlagSet) complete.Flags {
	flags := complete.Flags{}
	set.VisitAll(func(f *flag.Flag) {
		var p complete.Predictor = complete.PredictAnything
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			p = complete.PredictNothing
		}
		switch {
		case strings.HasSuffix(f.Name, "config"):
			p = complete.PredictFiles("*.toml")
		case strings.HasSuffix(f.Name, "file"):
			p = complete.PredictFiles("*")
		}
		flags["-"+f.Name] = p
	})
	return flags
}
