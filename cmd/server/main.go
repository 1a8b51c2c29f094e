package main

import "rrhh/internal/app/server"

func main() {
	server.Run()
}
