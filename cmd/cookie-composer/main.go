package main

import "github.com/basecamp/cookie-composer/internal/cmd"

func main() {
	cmd.Execute()
}
