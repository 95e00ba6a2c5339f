package main

import "github.com/kaitosekiya/attacklab-stats/internal/cli"

func main() {
	cli.Execute()
}
