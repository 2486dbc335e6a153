package main

import (
	"log"

	"github.com/careline/case-service/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
