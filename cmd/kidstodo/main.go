package main

import "github.com/nhle/kids-todo/cmd/kidstodo/root"

func main() {
	root.Execute()
}
