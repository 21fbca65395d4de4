package main

import "github.com/masdika/employee-directory/cmd"

func main() {
	cmd.Execute()
}
