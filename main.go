package main

import (
	"github.com/cloud-ru/mcp-vehicle-loan-go/cmd"
)

func main() {
	cmd.Execute()
}
