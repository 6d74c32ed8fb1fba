package main

import "github.com/userportal/webapp/cmd"

func main() {
	cmd.Execute()
}
