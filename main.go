package main

import (
	"os"

	"github.com/partshop/partshop/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
