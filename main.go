package main

import "github.com/Norgate-AV/instant-clean/cmd"

func main() {
	cmd.Execute()
}
