// Package buildinfo exposes build metadata injected with -ldflags:
//
//	go build -ldflags "-X github.com/dmitrijs2005/forestadmin/internal/buildinfo.Version=v1.2.0 \
//	  -X github.com/dmitrijs2005/forestadmin/internal/buildinfo.Date=2026-10-17 \
//	  -X github.com/dmitrijs2005/forestadmin/internal/buildinfo.Commit=abc123"
package buildinfo

import (
	"fmt"
	"io"
)

const unset = "N/A"

var (
	Version = unset
	Date    = unset
	Commit  = unset
)

func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", orNA(Version))
	fmt.Fprintf(w, "Build date: %s\n", orNA(Date))
	fmt.Fprintf(w, "Build commit: %s\n", orNA(Commit))
}

func orNA(s string) string {
	if s == "" {
		return unset
	}
	return s
}
