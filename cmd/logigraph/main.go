package main

import "github.com/Egor213/LogiGraph/internal/app"

func main() {
	app.Run()
}
