// cmd/rnafold-bench/main.go
package main

import (
	"rnafold/internal/appshell"
	"rnafold/internal/benchapp"
)

func main() { appshell.MainDefaults(benchapp.RunContext) }
