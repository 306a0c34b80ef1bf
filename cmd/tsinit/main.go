package main

import (
	"os"

	"github.com/schmitthub/tsinit/internal/tsinit"
)

func main() {
	os.Exit(tsinit.Main())
}
