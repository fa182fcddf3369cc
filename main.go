package main

import "github.com/govently/govently_backend/cmd"

func main() {
	cmd.Execute()
}
