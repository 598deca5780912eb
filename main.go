package main

import "github.com/Mohsinsiddi/w3account/cmd"

func main() {
	cmd.Execute()
}
