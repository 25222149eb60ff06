package main

import "github.com/unkn0wn-root/romanum/internal/cli"

func main() {
	cli.Execute()
}
