// Command atscv analyzes a résumé from the command line.
package main

import _ "github.com/joho/godotenv/autoload"

func main() {
	Execute()
}
