package main

import "github.com/jask/storygram/app"

func main() {
	app.New().Run()
}
