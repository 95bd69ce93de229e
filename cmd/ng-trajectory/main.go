package main

import "github.com/wentasah/ng-trajectory/cmd/ng-trajectory/cmd"

func main() {
	cmd.Execute()
}
