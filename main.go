package main

import (
	"os"

	"github.com/ventastarango2700-netizen/unofitmx/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
