package main

import (
	"github.com/tickquant/ta/pkg/cmd"
)

func main() {
	cmd.Execute()
}
