package main

import (
	"log"

	"github.com/sirxnine/cartas/internal/cli"
)

func main() {
	log.SetPrefix("[CARTAS] ")
	cli.Run()
}
