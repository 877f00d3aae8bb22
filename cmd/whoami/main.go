package main

import (
	"github.com/MinoUni/who-am-i-team-3/internal/cli"
)

func main() {
	cli.Execute()
}
