package main

import "github.com/winestat/winestat/cmd"

func main() {
	cmd.Execute()
}
