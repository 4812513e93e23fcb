package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sheet2html [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build HTML documentation pages from spreadsheet sources.")
	fmt.Fprintln(w, "Without --source or --all, only the configured default source is built.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Selection:")
	fmt.Fprintln(w, "  -s, --source <name>       Build one source")
	fmt.Fprintln(w, "  -a, --all                 Build all publishable sources and the landing page")
	fmt.Fprintln(w, "  -l, --list                List publishable sources and exit")
	fmt.Fprintln(w, "  -p, --package             Write zip packages after the build")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory")
	fmt.Fprintln(w, "      --sources <dir>       Source directory")
	fmt.Fprintln(w, "      --images <dir>        Image source directory")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel builds (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug output")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  SHEET2HTML_CONFIG, SHEET2HTML_SOURCE_DIR, SHEET2HTML_OUTPUT_DIR,")
	fmt.Fprintln(w, "  SHEET2HTML_IMAGE_DIR, SHEET2HTML_DEFAULT_SOURCE, SHEET2HTML_WORKERS")
	fmt.Fprintln(w, "  Values from a .env file in the working directory are loaded first.")
	fmt.Fprintln(w, "  Precedence: flags > environment > config file > defaults.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0 success, 1 general error, 2 usage/config/selection, 3 I/O, 4 content")
}
