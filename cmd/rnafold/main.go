// cmd/rnafold/main.go
package main

import (
	"rnafold/internal/appshell"
	"rnafold/internal/foldapp"
)

func main() { appshell.Main(foldapp.RunContext) }
