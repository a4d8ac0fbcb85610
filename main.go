package main

import "github.com/atriumhq/atrium_backend/cmd"

func main() {
	cmd.Execute()
}
