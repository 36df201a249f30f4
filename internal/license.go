package internal

import (
	"fmt"
	"io"
	"os"

	"go4.org/legal"

	"pkg.jsn.cam/syskey/licenses"
)

func init() {
	legal.RegisterLicense(licenses.MitLicense)
}

// WriteLicenses prints every registered license to w.
func WriteLicenses(w io.Writer) {
	fmt.Fprintf(w, "Licenses for this program: %s\n", os.Args[0])

	for _, li := range legal.Licenses() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "---")
		fmt.Fprintln(w)
		fmt.Fprintln(w, li)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "---")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Be well, Creator.")
}
