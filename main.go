package main

import (
	schedly "github.com/putto11262002/schedly/app"
)

func main() {
	app := schedly.New(nil, nil)
	app.Start()
}
