// main.go

package main

import "github.com/maikroservice/wazuh-discord-integration/cmd"

func main() {
	cmd.Execute()
}
