package main

import "github.com/paretodecide/pdctl/pkg/cli"

func main() {
	cli.Execute()
}
