// tallyconvert is a one-shot CLI wrapper around the conversion engine, for
// running converters against local report files without the web server.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
