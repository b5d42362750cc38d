package main

import (
	"adminrec/internal/app/server"
)

func main() {
	server.Run()
}
