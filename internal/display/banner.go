package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var bannerColor = color.New(color.FgHiMagenta, color.Bold)

// PrintBanner prints the ASCII art banner to w; magenta if colors are enabled.
func PrintBanner(w io.Writer) {
	_, _ = bannerColor.Fprint(w, `                _                      _   _
 _ __ ___   ___| |_ __ _  __ _  ___| |_| |_ ___ _ __
| '_ `+"`"+` _ \ / _ \ __/ _`+"`"+` |/ _`+"`"+` |/ _ \ __| __/ _ \ '__|
| | | | | |  __/ || (_| | (_| |  __/ |_| ||  __/ |
|_| |_| |_|\___|\__\__,_|\__, |\___|\__|\__\___|_|
                         |___/
`)
	fmt.Fprintln(w)
}
