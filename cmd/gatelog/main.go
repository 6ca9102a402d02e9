// Command gatelog emits a single record through a configured gatelog logger.
// It is handy for checking a collector endpoint or a console backend from a
// shell:
//
//	gatelog --level=info --server-level=warn --server-url=http://localhost:8080/logs \
//	    warn "disk almost full" '{"free":"2%"}'
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
