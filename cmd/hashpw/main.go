// Command hashpw prints the bcrypt hash of a password so it can be placed in
// ADMIN_PASSWORD_HASH or the config file.
package main

import (
	"fmt"
	"os"

	"github.com/cybershieldpro/backend/utils"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpw <password>")
		os.Exit(2)
	}
	hash, err := utils.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
