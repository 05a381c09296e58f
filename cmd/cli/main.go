// xn-mc - Minecraft server log analysis and wiki tooling
//
// xn-mc extracts deaths, play sessions, advancements, and chat from a
// Minecraft server's logs, and assembles obituary briefings for the
// community wiki.
package main

import (
	"os"

	"github.com/hunterjsb/xn-mc/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
