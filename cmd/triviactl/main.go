package main

import "github.com/gokatarajesh/trivia-api/internal/cli"

func main() {
	cli.Execute()
}
