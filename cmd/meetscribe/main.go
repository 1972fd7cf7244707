package main

import "meetscribe/cmd/meetscribe/cmd"

func main() {
	cmd.Execute()
}
