package main

import (
	"github.com/gostonefire/collections/cmd/collections-demo/cmd"
)

func main() {
	cmd.Execute()
}
