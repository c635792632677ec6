package main

import (
	"context"
	"log"

	"github.com/dmitrymomot/feedgate/pkg/cli"
)

func main() {
	if err := cli.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
