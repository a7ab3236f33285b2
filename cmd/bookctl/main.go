package main

import "github.com/Klea008/bookctl/internal/app"

func main() {
	app.Execute()
}
