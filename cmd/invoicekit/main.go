package main

import "github.com/dmitrymomot/invoicekit/internal/cli"

func main() {
	cli.Execute()
}
