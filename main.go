package main

import (
	"nocta-ui/cmd"
)

// main delegates to cmd.Execute, which parses arguments and runs the command.
//
// nocta-ui prepares a JavaScript project to consume the Nocta UI component library:
//   - detects the framework preset (Next.js, Vite or generic) from marker files
//   - classifies the Tailwind CSS major from package.json
//   - writes components.json, the record every later command reads paths from
//   - installs clsx and tailwind-merge with the project's package manager
//   - writes the cn() helper and injects the Nocta color palette
//
// Only the configuration record is essential: the later steps log a warning
// and let the run finish when they fail.
func main() {
	cmd.Execute()
}
