package main

import (
	"github.com/maestro-chess/maestro/shell"
)

func main() {
	shell.New().Run()
}
