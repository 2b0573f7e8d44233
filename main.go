package main

import (
	"github.com/yeonsu-kim/iljung/cmd"
)

func main() {
	cmd.Execute()
}
